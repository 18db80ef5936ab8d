// README: AI-quota service guarding model invocations.
package aiquota

import "context"

// Service orchestrates per-user AI-call allowances.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Use deducts one model call from the user's monthly allowance. A user seen
// for the first time is initialised and the call is immediately consumed.
func (s *Service) Use(ctx context.Context, userID string) error {
	err := s.store.Use(ctx, userID)
	if err != ErrInsufficientQuota {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, userID); initErr != nil {
		return initErr
	}
	return s.store.Use(ctx, userID)
}

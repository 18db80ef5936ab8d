// README: AI-quota persistence with lazy monthly reset.
package aiquota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Use atomically checks the monthly allowance and deducts one call.
// The counter resets to DefaultAllowance when last_reset_month is behind the
// current month. Zero rows updated means the allowance is exhausted or the
// user row is absent.
func (s *Store) Use(ctx context.Context, userID string) error {
	month := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE ai_usage SET
			calls_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE calls_remaining - 1 END,
			last_reset_month = $1
		WHERE user_id = $3 AND (last_reset_month < $1 OR calls_remaining > 0)
	`, month, DefaultAllowance, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientQuota
	}
	return nil
}

// EnsureUser inserts a new ai_usage row with the default allowance.
// An existing row is silently kept (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_usage (user_id, calls_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, DefaultAllowance, time.Now().Format("2006-01"))
	return err
}

// README: Booking service; placeholder passthrough until real providers are wired.
package booking

import (
	"context"
	"fmt"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// CreateCommand captures a reservation request.
// TODO: integrate Booking.com (hotels) and Hotpepper/Gurunavi (restaurants);
// until then every booking is persisted as pending.
type CreateCommand struct {
	ActivityID  string
	BookingType string
	ExternalID  string
}

func (s *Service) Create(ctx context.Context, userID string, cmd CreateCommand) (*Booking, error) {
	if !ValidType(cmd.BookingType) {
		return nil, fmt.Errorf("%w: bookingType must be one of hotel, restaurant, activity", ErrBadRequest)
	}
	return s.store.Insert(ctx, &Booking{
		UserID:      userID,
		ActivityID:  cmd.ActivityID,
		BookingType: cmd.BookingType,
		ExternalID:  cmd.ExternalID,
		Status:      StatusPending,
	})
}

func (s *Service) List(ctx context.Context, userID string) ([]*Booking, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Cancel(ctx context.Context, userID, bookingID string) (*Booking, error) {
	return s.store.UpdateStatus(ctx, bookingID, userID, StatusCancelled)
}

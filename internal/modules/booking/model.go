// README: Booking record and status definitions.
package booking

import (
	"errors"
	"time"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("booking not found")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Types of reservations the placeholder passthrough accepts.
const (
	TypeHotel      = "hotel"
	TypeRestaurant = "restaurant"
	TypeActivity   = "activity"
)

// Booking is a placeholder reservation row. No external reservation protocol
// is wired yet; ExternalID is reserved for the provider's confirmation id.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ActivityID  string    `json:"activityId,omitempty"`
	BookingType string    `json:"bookingType"`
	ExternalID  string    `json:"externalId,omitempty"`
	Status      Status    `json:"status"`
	BookedAt    time.Time `json:"bookedAt"`
}

func ValidType(t string) bool {
	switch t {
	case TypeHotel, TypeRestaurant, TypeActivity:
		return true
	}
	return false
}

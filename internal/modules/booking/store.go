// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const bookingColumns = `id::text, user_id, activity_id, booking_type, external_id, status, booked_at`

func (s *Store) Insert(ctx context.Context, b *Booking) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO bookings (user_id, activity_id, booking_type, external_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+bookingColumns,
		b.UserID, b.ActivityID, b.BookingType, b.ExternalID, string(b.Status),
	)
	return scanBooking(row)
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = $1
		ORDER BY booked_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id, userID string, status Status) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE bookings
		SET status = $1
		WHERE id = $2 AND user_id = $3
		RETURNING `+bookingColumns,
		string(status), id, userID,
	)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.UserID, &b.ActivityID, &b.BookingType, &b.ExternalID, &b.Status, &b.BookedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

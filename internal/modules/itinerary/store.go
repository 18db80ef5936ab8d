// README: Itinerary store backed by PostgreSQL (jsonb days, versioned updates).
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const itineraryColumns = `id::text, user_id, title, start_date::text, end_date::text, cities, days, total_cost, version, created_at`

func (s *Store) Insert(ctx context.Context, it *Itinerary) (*Itinerary, error) {
	daysJSON, err := json.Marshal(it.Days)
	if err != nil {
		return nil, fmt.Errorf("encode days: %w", err)
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO itineraries (user_id, title, start_date, end_date, cities, days, total_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+itineraryColumns,
		it.UserID, it.Title, it.StartDate, it.EndDate, it.Cities, daysJSON, it.TotalCost,
	)
	return scanItinerary(row)
}

func (s *Store) GetByID(ctx context.Context, id, userID string) (*Itinerary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+itineraryColumns+`
		FROM itineraries
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	it, err := scanItinerary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return it, err
}

// UpdatePlan replaces days and total cost, conditional on the version the
// caller read. Zero rows updated means either a concurrent adjustment
// (ErrConflict) or a row that no longer exists (ErrNotFound).
func (s *Store) UpdatePlan(ctx context.Context, id, userID string, version int, days []DaySchedule, totalCost *float64) (*Itinerary, error) {
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("encode days: %w", err)
	}
	row := s.db.QueryRow(ctx, `
		UPDATE itineraries
		SET days = $1, total_cost = $2, version = version + 1
		WHERE id = $3 AND user_id = $4 AND version = $5
		RETURNING `+itineraryColumns,
		daysJSON, totalCost, id, userID, version,
	)
	it, err := scanItinerary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := s.GetByID(ctx, id, userID); getErr == nil {
			return nil, ErrConflict
		}
		return nil, ErrNotFound
	}
	return it, err
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*Itinerary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+itineraryColumns+`
		FROM itineraries
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM itineraries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendRevision records a pre-adjustment snapshot for auditability.
func (s *Store) AppendRevision(ctx context.Context, rev *Revision) error {
	daysJSON, err := json.Marshal(rev.Days)
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO itinerary_revisions (itinerary_id, version, days, total_cost, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rev.ItineraryID, rev.Version, daysJSON, rev.TotalCost, rev.Reason, rev.CreatedAt,
	)
	return err
}

func scanItinerary(row pgx.Row) (*Itinerary, error) {
	var it Itinerary
	var daysJSON []byte
	err := row.Scan(
		&it.ID, &it.UserID, &it.Title, &it.StartDate, &it.EndDate,
		&it.Cities, &daysJSON, &it.TotalCost, &it.Version, &it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(daysJSON, &it.Days); err != nil {
		return nil, fmt.Errorf("decode days: %w", err)
	}
	return &it, nil
}

// README: Itinerary aggregate, trip parameters and module errors.
package itinerary

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("itinerary not found")
	ErrConflict         = errors.New("itinerary was modified concurrently")
	ErrGenerationFailed = errors.New("failed to generate itinerary")
	ErrAdjustmentFailed = errors.New("failed to adjust itinerary")
)

// Budget tiers accepted by the generator.
const (
	BudgetLow      = "budget"
	BudgetModerate = "moderate"
	BudgetLuxury   = "luxury"
)

// Travel-style tiers. StyleModerate is the default when the caller omits one.
const (
	StyleRelaxed  = "relaxed"
	StyleModerate = "moderate"
	StylePacked   = "packed"
)

// Location is a named place with a street address and GeoJSON-ordered
// coordinates: [longitude, latitude]. The fixed-size array keeps the pair
// exactly two numbers through storage and the API.
type Location struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Activity is one scheduled stop within a day.
type Activity struct {
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Location  Location `json:"location"`
	Notes     string   `json:"notes,omitempty"`
}

// DaySchedule is one calendar day's ordered activity list.
type DaySchedule struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the persisted multi-day plan owned by one user.
// Version increments on every adjustment and guards concurrent updates.
type Itinerary struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Title     string        `json:"title"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Cities    []string      `json:"cities"`
	Days      []DaySchedule `json:"days"`
	TotalCost *float64      `json:"totalCost,omitempty"`
	Version   int           `json:"version"`
	CreatedAt time.Time     `json:"createdAt"`
}

// GeneratedPlan is the model-produced subset of an itinerary: everything the
// orchestrator does not assign itself.
type GeneratedPlan struct {
	Days      []DaySchedule `json:"days"`
	TotalCost *float64      `json:"totalCost,omitempty"`
}

// Revision is a pre-adjustment snapshot kept for auditability.
type Revision struct {
	ItineraryID string
	Version     int
	Days        []DaySchedule
	TotalCost   *float64
	Reason      string
	CreatedAt   time.Time
}

// TripParams are the caller-supplied generation inputs.
type TripParams struct {
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Cities      []string `json:"cities"`
	Interests   []string `json:"interests"`
	Budget      string   `json:"budget"`
	TravelStyle string   `json:"travelStyle,omitempty"`
}

// Statistics are simple rollups over a user's itineraries.
type Statistics struct {
	TotalItineraries        int     `json:"totalItineraries"`
	TotalDays               int     `json:"totalDays"`
	TotalCost               float64 `json:"totalCost"`
	UniqueCities            int     `json:"uniqueCities"`
	AverageDaysPerItinerary int     `json:"averageDaysPerItinerary"`
	AverageCostPerItinerary int     `json:"averageCostPerItinerary"`
}

const dateLayout = "2006-01-02"

// Validate checks the request shape at the boundary: well-formed dates,
// non-empty cities and interests, known budget and travel-style tiers.
// Date ordering is the caller's contract and is not re-checked here.
func (p TripParams) Validate() error {
	if _, err := time.Parse(dateLayout, p.StartDate); err != nil {
		return fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrBadRequest)
	}
	if _, err := time.Parse(dateLayout, p.EndDate); err != nil {
		return fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrBadRequest)
	}
	if len(p.Cities) == 0 {
		return fmt.Errorf("%w: cities must not be empty", ErrBadRequest)
	}
	if len(p.Interests) == 0 {
		return fmt.Errorf("%w: interests must not be empty", ErrBadRequest)
	}
	switch p.Budget {
	case BudgetLow, BudgetModerate, BudgetLuxury:
	default:
		return fmt.Errorf("%w: budget must be one of budget, moderate, luxury", ErrBadRequest)
	}
	switch p.TravelStyle {
	case "", StyleRelaxed, StyleModerate, StylePacked:
	default:
		return fmt.Errorf("%w: travelStyle must be one of relaxed, moderate, packed", ErrBadRequest)
	}
	return nil
}

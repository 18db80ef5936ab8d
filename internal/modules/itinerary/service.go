// README: Itinerary orchestrator: prompt -> model -> validation -> persistence.
package itinerary

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"tabi/internal/ai"
)

// Storage is the persistence gateway the orchestrator borrows per call.
// Every operation is scoped by (id, userID) so cross-user access cannot be
// expressed at all.
type Storage interface {
	Insert(ctx context.Context, it *Itinerary) (*Itinerary, error)
	GetByID(ctx context.Context, id, userID string) (*Itinerary, error)
	UpdatePlan(ctx context.Context, id, userID string, version int, days []DaySchedule, totalCost *float64) (*Itinerary, error)
	ListByUser(ctx context.Context, userID string) ([]*Itinerary, error)
	Delete(ctx context.Context, id, userID string) error
	AppendRevision(ctx context.Context, rev *Revision) error
}

// Service coordinates generation and adjustment. It is stateless: all state
// lives in persisted rows and in-flight call parameters.
type Service struct {
	store Storage
	model ai.TextCompleter
}

func NewService(store Storage, model ai.TextCompleter) *Service {
	return &Service{store: store, model: model}
}

// Generate builds a fresh itinerary from trip parameters. Persistence happens
// exactly once, after the model reply validated; a failure at any earlier
// stage leaves no record behind.
func (s *Service) Generate(ctx context.Context, userID string, params TripParams) (*Itinerary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", ErrBadRequest)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildGenerationPrompt(params)
	raw, err := s.model.Complete(ctx, prompt)
	if err != nil {
		log.Printf("itinerary: generation model call failed: %v", err)
		return nil, ErrGenerationFailed
	}

	plan, err := ExtractPlan(raw)
	if err != nil {
		log.Printf("itinerary: generation reply rejected: %v", err)
		return nil, ErrGenerationFailed
	}

	saved, err := s.store.Insert(ctx, &Itinerary{
		UserID:    userID,
		Title:     deriveTitle(params.Cities),
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Cities:    params.Cities,
		Days:      plan.Days,
		TotalCost: plan.TotalCost,
	})
	if err != nil {
		log.Printf("itinerary: save generated plan: %v", err)
		return nil, ErrGenerationFailed
	}
	return saved, nil
}

// Adjust re-runs the pipeline against an existing itinerary, wholesale
// replacing days and total cost. Title, cities, dates and createdAt are left
// untouched. The update is conditional on the version read here; a concurrent
// adjustment surfaces as ErrConflict.
func (s *Service) Adjust(ctx context.Context, userID, itineraryID, reason string, preferences map[string]any) (*Itinerary, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: reason must not be empty", ErrBadRequest)
	}

	existing, err := s.store.GetByID(ctx, itineraryID, userID)
	if err != nil {
		return nil, err
	}

	prompt := BuildAdjustmentPrompt(existing.Days, reason, preferences)
	raw, err := s.model.Complete(ctx, prompt)
	if err != nil {
		log.Printf("itinerary: adjustment model call failed: %v", err)
		return nil, ErrAdjustmentFailed
	}

	plan, err := ExtractPlan(raw)
	if err != nil {
		log.Printf("itinerary: adjustment reply rejected: %v", err)
		return nil, ErrAdjustmentFailed
	}

	updated, err := s.store.UpdatePlan(ctx, itineraryID, userID, existing.Version, plan.Days, plan.TotalCost)
	if err != nil {
		if err == ErrConflict || err == ErrNotFound {
			return nil, err
		}
		log.Printf("itinerary: save adjusted plan: %v", err)
		return nil, ErrAdjustmentFailed
	}

	// Keep the pre-adjustment snapshot, best effort, only once the update has
	// landed; a lost race must not leave a revision row behind.
	if err := s.store.AppendRevision(ctx, &Revision{
		ItineraryID: existing.ID,
		Version:     existing.Version,
		Days:        existing.Days,
		TotalCost:   existing.TotalCost,
		Reason:      reason,
		CreatedAt:   time.Now(),
	}); err != nil {
		log.Printf("itinerary: append revision for %s: %v", existing.ID, err)
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, userID, itineraryID string) (*Itinerary, error) {
	return s.store.GetByID(ctx, itineraryID, userID)
}

func (s *Service) List(ctx context.Context, userID string) ([]*Itinerary, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, itineraryID string) error {
	return s.store.Delete(ctx, itineraryID, userID)
}

// Statistics derives rollups by scanning the user's persisted itineraries.
func (s *Service) Statistics(ctx context.Context, userID string) (Statistics, error) {
	items, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{TotalItineraries: len(items)}
	cities := make(map[string]struct{})
	for _, it := range items {
		stats.TotalDays += tripDays(it.StartDate, it.EndDate)
		if it.TotalCost != nil {
			stats.TotalCost += *it.TotalCost
		}
		for _, c := range it.Cities {
			cities[c] = struct{}{}
		}
	}
	stats.UniqueCities = len(cities)
	if stats.TotalItineraries > 0 {
		stats.AverageDaysPerItinerary = int(math.Round(float64(stats.TotalDays) / float64(stats.TotalItineraries)))
		stats.AverageCostPerItinerary = int(math.Round(stats.TotalCost / float64(stats.TotalItineraries)))
	}
	return stats, nil
}

func deriveTitle(cities []string) string {
	return strings.Join(cities, ", ") + " Trip"
}

// tripDays counts calendar days inclusively; malformed rows count as zero.
func tripDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}
	d := int(end.Sub(start).Hours()/24) + 1
	if d < 0 {
		return 0
	}
	return d
}

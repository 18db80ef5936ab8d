// README: Place search via Google Places text search, biased to Japan.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place represents a simplified location result.
type Place struct {
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	Coordinates      [2]float64 `json:"coordinates"`
	Rating           float32    `json:"rating"`
	PlaceID          string     `json:"placeId"`
	UserRatingsTotal int        `json:"userRatingsTotal"`
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchNearby searches for places matching the query near the given location
// name, keeping only well-rated results. Up to five results are returned so
// activity pickers stay short.
func (s *PlacesService) SearchNearby(ctx context.Context, location, query string) ([]Place, error) {
	fullQuery := query
	if location != "" {
		fullQuery = fmt.Sprintf("%s near %s", query, location)
	}

	r := &maps.TextSearchRequest{
		Query:    fullQuery,
		Language: "en",
		Region:   "JP",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < 4.0 { // Filter for high quality
			continue
		}
		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Coordinates:      [2]float64{result.Geometry.Location.Lng, result.Geometry.Location.Lat},
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= 5 {
			break
		}
	}
	return results, nil
}

// README: Route lookup via Google Directions, emitting lng-first GeoJSON geometry.
package maps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

// Geometry is a GeoJSON LineString. Coordinate pairs are [longitude, latitude]
// and must stay in that order all the way to the map renderer.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

type RouteStep struct {
	Instruction string     `json:"instruction"`
	Distance    int        `json:"distance"`
	Duration    int        `json:"duration"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Route struct {
	Distance int         `json:"distance"`
	Duration int         `json:"duration"`
	Geometry Geometry    `json:"geometry"`
	Steps    []RouteStep `json:"steps,omitempty"`
}

// RouteService handles interactions with the Google Maps Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// GetRoute returns the best route between two "lng,lat" coordinate strings.
// mode is walking, driving or transit; anything else defaults to walking.
func (s *RouteService) GetRoute(ctx context.Context, from, to, mode string) (*Route, error) {
	origin, err := parseLngLat(from)
	if err != nil {
		return nil, fmt.Errorf("parse from: %w", err)
	}
	dest, err := parseLngLat(to)
	if err != nil {
		return nil, fmt.Errorf("parse to: %w", err)
	}

	r := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
		Destination: fmt.Sprintf("%f,%f", dest.Lat, dest.Lng),
		Mode:        travelMode(mode),
		Language:    "en",
		Region:      "JP",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	route := routes[0]
	leg := route.Legs[0]

	out := &Route{
		Distance: leg.Distance.Meters,
		Duration: int(leg.Duration.Seconds()),
		Geometry: Geometry{Type: "LineString"},
	}

	points, err := route.OverviewPolyline.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	for _, p := range points {
		out.Geometry.Coordinates = append(out.Geometry.Coordinates, [2]float64{p.Lng, p.Lat})
	}

	for _, step := range leg.Steps {
		out.Steps = append(out.Steps, RouteStep{
			Instruction: step.HTMLInstructions,
			Distance:    step.Distance.Meters,
			Duration:    int(step.Duration.Seconds()),
			Coordinates: [2]float64{step.StartLocation.Lng, step.StartLocation.Lat},
		})
	}
	return out, nil
}

func travelMode(mode string) maps.Mode {
	switch mode {
	case "driving":
		return maps.TravelModeDriving
	case "transit":
		return maps.TravelModeTransit
	default:
		return maps.TravelModeWalking
	}
}

// parseLngLat parses a "lng,lat" query string into a LatLng.
func parseLngLat(v string) (maps.LatLng, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return maps.LatLng{}, fmt.Errorf("expected lng,lat, got %q", v)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return maps.LatLng{}, fmt.Errorf("bad longitude %q", parts[0])
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return maps.LatLng{}, fmt.Errorf("bad latitude %q", parts[1])
	}
	return maps.LatLng{Lat: lat, Lng: lng}, nil
}

// GetTravelEstimate returns duration and a human-readable distance between two
// place names, assuming transit. Backs GET /api/maps/travel-estimate.
func (s *RouteService) GetTravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeTransit,
		Language:    "en",
		Region:      "JP",
	}
	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, "", fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, "", fmt.Errorf("no route found")
	}
	leg := routes[0].Legs[0]
	return leg.Duration, leg.Distance.HumanReadable, nil
}

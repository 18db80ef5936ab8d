// README: Transit schedule lookup via Google Directions (transit mode).
package transit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"googlemaps.github.io/maps"
)

// Service proxies schedule lookups to the Google Maps Directions API.
// TODO: replace with real Japan Rail data once an API contract is available.
type Service struct {
	client *maps.Client
}

func NewService(apiKey string) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// GetSchedule returns transit options between two places on a given date.
// hhmm is optional; when present it is combined with the date as the
// requested departure time in JST.
func (s *Service) GetSchedule(ctx context.Context, from, to, date, hhmm string) ([]Route, error) {
	r := &maps.DirectionsRequest{
		Origin:      from,
		Destination: to,
		Mode:        maps.TravelModeTransit,
		Language:    "en",
		Region:      "JP",
	}
	if hhmm != "" {
		loc, err := time.LoadLocation("Asia/Tokyo")
		if err != nil {
			return nil, fmt.Errorf("load Asia/Tokyo location: %w", err)
		}
		departure, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, loc)
		if err != nil {
			return nil, fmt.Errorf("parse departure time: %w", err)
		}
		r.DepartureTime = strconv.FormatInt(departure.Unix(), 10)
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}

	out := make([]Route, 0, len(routes))
	for _, route := range routes {
		if len(route.Legs) == 0 {
			continue
		}
		leg := route.Legs[0]
		option := Route{
			From:          leg.StartAddress,
			To:            leg.EndAddress,
			DepartureTime: leg.DepartureTime.Format(time.RFC3339),
			ArrivalTime:   leg.ArrivalTime.Format(time.RFC3339),
			DurationSec:   int(leg.Duration.Seconds()),
		}
		for _, step := range leg.Steps {
			if step.TransitDetails == nil {
				continue
			}
			td := step.TransitDetails
			line := td.Line.ShortName
			if line == "" {
				line = td.Line.Name
			}
			option.Transfers = append(option.Transfers, Transfer{
				From:          td.DepartureStop.Name,
				To:            td.ArrivalStop.Name,
				Line:          line,
				DepartureTime: td.DepartureTime.Format(time.RFC3339),
				ArrivalTime:   td.ArrivalTime.Format(time.RFC3339),
			})
		}
		out = append(out, option)
	}
	return out, nil
}

// README: Weather service with redis caching and canned fallbacks.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL keeps upstream traffic down; conditions are stale-tolerant.
const cacheTTL = 10 * time.Minute

type Service struct {
	client *Client
	cache  *redis.Client
}

func NewService(client *Client, cache *redis.Client) *Service {
	return &Service{client: client, cache: cache}
}

// Get returns conditions for a coordinate, serving from cache when possible.
// Lookup failures degrade to a fixed fallback payload instead of erroring;
// itinerary pages should render with or without live weather.
func (s *Service) Get(ctx context.Context, lat, lon float64) (*Data, error) {
	key := fmt.Sprintf("weather:%.2f:%.2f", lat, lon)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var d Data
			if err := json.Unmarshal(cached, &d); err == nil {
				return &d, nil
			}
		}
	}

	d, err := s.client.Fetch(ctx, lat, lon)
	if err == ErrNotConfigured {
		return &Data{
			Temperature: 22,
			Condition:   "Partly Cloudy",
			Icon:        "partly-cloudy",
			Humidity:    65,
			WindSpeed:   10,
			Description: "Partly cloudy with light winds",
		}, nil
	}
	if err != nil {
		log.Printf("weather: lookup failed for %.2f,%.2f: %v", lat, lon, err)
		return &Data{
			Temperature: 22,
			Condition:   "Unknown",
			Icon:        "unknown",
			Description: "Weather data unavailable",
		}, nil
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(d); err == nil {
			if err := s.cache.Set(ctx, key, encoded, cacheTTL).Err(); err != nil {
				log.Printf("weather: cache set failed: %v", err)
			}
		}
	}
	return d, nil
}

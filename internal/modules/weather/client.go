// README: OpenWeather current-conditions client over plain HTTP.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const openWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"

// ErrNotConfigured means no OPENWEATHER key is set; callers fall back to canned data.
var ErrNotConfigured = errors.New("weather: api key not configured")

type Client struct {
	apiKey string
	http   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Fetch returns current conditions at lat/lon in metric units.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Data, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openWeatherEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: status %d", resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("weather: decode response: %w", err)
	}
	if len(body.Weather) == 0 {
		return nil, fmt.Errorf("weather: empty conditions array")
	}

	return &Data{
		Temperature: int(math.Round(body.Main.Temp)),
		Condition:   body.Weather[0].Main,
		Icon:        body.Weather[0].Icon,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
		Description: body.Weather[0].Description,
	}, nil
}

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
)

// Client talks to the Open-Meteo forecast and geocoding APIs.
type Client struct {
	HTTPClient  *http.Client
	ForecastURL string // overridable for testing
	GeocodeURL  string // overridable for testing
	logger      *slog.Logger
}

// NewClient creates an Open-Meteo client with an explicit timeout
// instead of http.DefaultClient.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		ForecastURL: defaultForecastURL,
		GeocodeURL:  defaultGeocodeURL,
		logger:      logger,
	}
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open-meteo API error: %d %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// geocodeResponse wraps the geocoding API result list.
type geocodeResponse struct {
	Results []Location `json:"results"`
}

// Geocode searches places matching a free-text query, returning up to
// five matches. Queries shorter than two characters short-circuit to an
// empty result without a network call. All transport and decode
// failures are absorbed here and reported as "no matches".
func (c *Client) Geocode(ctx context.Context, query string) []Location {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return []Location{}
	}

	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "5")
	params.Set("language", "en")

	data, err := c.get(ctx, c.GeocodeURL+"?"+params.Encode())
	if err != nil {
		c.logger.Warn("geocode request failed", "query", query, "error", err)
		return []Location{}
	}

	var resp geocodeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("geocode decode failed", "query", query, "error", err)
		return []Location{}
	}

	if resp.Results == nil {
		return []Location{}
	}
	return resp.Results
}

// FetchForecast requests current conditions and a 5-day forecast for
// the given coordinates. Failures propagate to the caller; the render
// pass halts rather than showing partial data.
func (c *Client) FetchForecast(ctx context.Context, lat, lon float64, timezone, tempUnit string) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("timezone", timezone)
	params.Set("temperature_unit", tempUnit)
	// Wind and precipitation units are fixed regardless of the
	// temperature unit.
	params.Set("wind_speed_unit", "mph")
	params.Set("precipitation_unit", "inch")
	params.Set("current", strings.Join([]string{
		"temperature_2m", "apparent_temperature", "relative_humidity_2m",
		"weather_code", "wind_speed_10m", "wind_direction_10m",
		"wind_gusts_10m", "precipitation", "cloud_cover", "is_day",
	}, ","))
	params.Set("daily", strings.Join([]string{
		"weather_code", "temperature_2m_max", "temperature_2m_min",
		"precipitation_sum", "precipitation_probability_max",
	}, ","))
	params.Set("forecast_days", "5")

	data, err := c.get(ctx, c.ForecastURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	var fc ForecastResponse
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}
	return &fc, nil
}

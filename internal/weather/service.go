package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/skycastapp/skycast/internal/db"
	"github.com/skycastapp/skycast/internal/observability"
)

// apiClient is the slice of Client the service depends on.
type apiClient interface {
	Geocode(ctx context.Context, query string) []Location
	FetchForecast(ctx context.Context, lat, lon float64, timezone, tempUnit string) (*ForecastResponse, error)
}

// Cache is the response cache the service reads through.
type Cache interface {
	GetCached(key string) (*db.CachedEntry, error)
	SetCached(key, data string, ttl time.Duration) error
}

// Service orchestrates the Open-Meteo clients behind the response
// cache. Forecast responses are cached briefly, geocode results longer;
// cache failures are never fatal.
type Service struct {
	client      apiClient
	cache       Cache
	metrics     *observability.Metrics
	logger      *slog.Logger
	clock       clockwork.Clock
	forecastTTL time.Duration
	geocodeTTL  time.Duration
}

// NewService creates a weather service.
func NewService(client apiClient, cache Cache, metrics *observability.Metrics, logger *slog.Logger, clock clockwork.Clock, forecastTTL, geocodeTTL time.Duration) *Service {
	return &Service{
		client:      client,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		clock:       clock,
		forecastTTL: forecastTTL,
		geocodeTTL:  geocodeTTL,
	}
}

// forecastKey rounds coordinates to 2 decimal places (about 1.1km) so
// nearby requests share a cache entry.
func forecastKey(lat, lon float64, timezone, unit string) string {
	const precision = 100.0
	rLat := math.Round(lat*precision) / precision
	rLon := math.Round(lon*precision) / precision
	return fmt.Sprintf("wx:%.2f,%.2f|%s|%s", rLat, rLon, timezone, unit)
}

// GetForecast returns the forecast for a location, serving from cache
// when a fresh entry exists. Fetch failures propagate to the caller.
func (s *Service) GetForecast(ctx context.Context, loc Location, tempUnit string) (*ForecastResponse, error) {
	key := forecastKey(loc.Latitude, loc.Longitude, loc.Timezone, tempUnit)

	cached, err := s.cache.GetCached(key)
	if err != nil {
		// Proceed to fetch fresh data on cache error.
		s.logger.Warn("forecast cache read failed", "error", err)
	}
	if cached != nil {
		var fc ForecastResponse
		if err := json.Unmarshal([]byte(cached.Data), &fc); err == nil {
			s.metrics.CacheLookups.WithLabelValues("forecast", "hit").Inc()
			return &fc, nil
		} else {
			s.logger.Warn("forecast cache unmarshal failed", "error", err)
		}
	}
	s.metrics.CacheLookups.WithLabelValues("forecast", "miss").Inc()

	start := s.clock.Now()
	fc, err := s.client.FetchForecast(ctx, loc.Latitude, loc.Longitude, loc.Timezone, tempUnit)
	s.metrics.FetchAPIDuration.WithLabelValues("forecast").Observe(s.clock.Since(start).Seconds())
	if err != nil {
		s.metrics.ForecastFetches.WithLabelValues("error").Inc()
		return nil, err
	}
	s.metrics.ForecastFetches.WithLabelValues("success").Inc()

	if data, err := json.Marshal(fc); err == nil {
		if err := s.cache.SetCached(key, string(data), s.forecastTTL); err != nil {
			s.logger.Warn("forecast cache write failed", "error", err)
		}
	}

	return fc, nil
}

// Geocode resolves a free-text query to matching places. Failures and
// short queries both surface as an empty list.
func (s *Service) Geocode(ctx context.Context, query string) []Location {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return []Location{}
	}

	key := "geo:" + strings.ToLower(query)
	cached, err := s.cache.GetCached(key)
	if err != nil {
		s.logger.Warn("geocode cache read failed", "error", err)
	}
	if cached != nil {
		var locs []Location
		if err := json.Unmarshal([]byte(cached.Data), &locs); err == nil {
			s.metrics.CacheLookups.WithLabelValues("geocode", "hit").Inc()
			return locs
		} else {
			s.logger.Warn("geocode cache unmarshal failed", "error", err)
		}
	}
	s.metrics.CacheLookups.WithLabelValues("geocode", "miss").Inc()

	start := s.clock.Now()
	locs := s.client.Geocode(ctx, query)
	s.metrics.FetchAPIDuration.WithLabelValues("geocode").Observe(s.clock.Since(start).Seconds())

	if len(locs) == 0 {
		s.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		return locs
	}
	s.metrics.GeocodeRequests.WithLabelValues("success").Inc()

	// Only cache non-empty results so transient failures can retry.
	if data, err := json.Marshal(locs); err == nil {
		if err := s.cache.SetCached(key, string(data), s.geocodeTTL); err != nil {
			s.logger.Warn("geocode cache write failed", "error", err)
		}
	}

	return locs
}

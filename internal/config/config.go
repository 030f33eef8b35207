package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/skycastapp/skycast/internal/weather"
)

// Config holds all service settings, populated from environment
// variables.
type Config struct {
	Port        int
	DBPath      string
	HTTPTimeout time.Duration
	ForecastTTL time.Duration
	GeocodeTTL  time.Duration
	LogLevel    string

	// DefaultLocation is shown when a request carries no explicit
	// location selection.
	DefaultLocation weather.Location
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + strconv.Itoa(c.Port) }

// Load reads configuration from environment variables, applying
// defaults where unset.
func Load() (*Config, error) {
	port, err := envInt("PORT", 8080)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := envDuration("HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	forecastTTL, err := envDuration("FORECAST_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	geocodeTTL, err := envDuration("GEOCODE_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	defaultLoc, err := defaultLocation()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		DBPath:          envOrDefault("DB_PATH", "skycast.db"),
		HTTPTimeout:     httpTimeout,
		ForecastTTL:     forecastTTL,
		GeocodeTTL:      geocodeTTL,
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		DefaultLocation: defaultLoc,
	}, nil
}

// defaultLocation applies DEFAULT_LOCATION_* overrides on top of the
// built-in fallback place.
func defaultLocation() (weather.Location, error) {
	loc := weather.DefaultLocation

	lat, err := envFloat("DEFAULT_LOCATION_LAT", loc.Latitude)
	if err != nil {
		return weather.Location{}, err
	}
	lon, err := envFloat("DEFAULT_LOCATION_LON", loc.Longitude)
	if err != nil {
		return weather.Location{}, err
	}

	loc.Name = envOrDefault("DEFAULT_LOCATION_NAME", loc.Name)
	loc.Admin1 = envOrDefault("DEFAULT_LOCATION_ADMIN1", loc.Admin1)
	loc.Country = envOrDefault("DEFAULT_LOCATION_COUNTRY", loc.Country)
	loc.Latitude = lat
	loc.Longitude = lon
	loc.Timezone = envOrDefault("DEFAULT_LOCATION_TZ", loc.Timezone)
	return loc, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}

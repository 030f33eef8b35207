package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skycastapp/skycast/internal/config"
	"github.com/skycastapp/skycast/internal/db"
	"github.com/skycastapp/skycast/internal/handlers"
	"github.com/skycastapp/skycast/internal/observability"
	"github.com/skycastapp/skycast/internal/weather"
)

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	clock := clockwork.NewRealClock()

	database, err := db.NewDB(cfg.DBPath, clock)
	if err != nil {
		logger.Warn("cache database unavailable, continuing without it", "error", err)
	} else {
		defer database.Close()
		logger.Info("cache database ready", "path", cfg.DBPath)
		if n, err := database.PurgeExpired(); err != nil {
			logger.Warn("cache purge failed", "error", err)
		} else if n > 0 {
			logger.Info("purged expired cache entries", "count", n)
		}
	}

	metrics := observability.NewMetrics()
	client := weather.NewClient(cfg.HTTPTimeout, logger)

	var cache weather.Cache = database
	var pinger handlers.Pinger
	if database != nil {
		pinger = database
	} else {
		cache = noopCache{}
	}

	svc := weather.NewService(client, cache, metrics, logger, clock, cfg.ForecastTTL, cfg.GeocodeTTL)
	h := handlers.New(svc, pinger, cfg.DefaultLocation, logger)

	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", h.HandleIndex)
	mux.HandleFunc("/api/weather", h.HandleWeatherFragment)
	mux.HandleFunc("/api/search", h.HandleSearch)
	mux.HandleFunc("/health", h.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("server starting", "addr", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), mux); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// noopCache keeps the service functional when the cache database
// failed to open; every lookup is a miss.
type noopCache struct{}

func (noopCache) GetCached(string) (*db.CachedEntry, error)     { return nil, nil }
func (noopCache) SetCached(string, string, time.Duration) error { return nil }

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the
// dashboard service.
type Metrics struct {
	ForecastFetches  *prometheus.CounterVec   // labels: outcome={success,error}
	GeocodeRequests  *prometheus.CounterVec   // labels: outcome={success,empty}
	CacheLookups     *prometheus.CounterVec   // labels: kind={forecast,geocode}, result={hit,miss}
	FetchAPIDuration *prometheus.HistogramVec // labels: api={forecast,geocode}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the metrics with a caller-supplied registry.
// Tests use this with a fresh registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ForecastFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skycast",
			Name:      "forecast_fetches_total",
			Help:      "Forecast API fetches by outcome.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skycast",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skycast",
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by kind and result.",
		}, []string{"kind", "result"}),
		FetchAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skycast",
			Name:      "api_request_duration_seconds",
			Help:      "Upstream API request duration.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"api"}),
	}

	reg.MustRegister(
		m.ForecastFetches,
		m.GeocodeRequests,
		m.CacheLookups,
		m.FetchAPIDuration,
	)

	return m
}

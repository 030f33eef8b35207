package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/skycastapp/skycast/internal/weather"
)

// Pinger is the slice of the database the health check needs.
type Pinger interface {
	Ping() error
}

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	weather   *weather.Service
	db        Pinger
	templates *template.Template
	fallback  weather.Location
	logger    *slog.Logger
}

// pageData is what the index template renders. Error is set when the
// forecast fetch failed and nothing else should be shown.
type pageData struct {
	View  *weather.View
	Error string
}

// New creates a Handlers instance, parsing the page templates from the
// templates directory.
func New(wService *weather.Service, database Pinger, fallback weather.Location, logger *slog.Logger) *Handlers {
	tmpl, err := template.ParseGlob("templates/*.html")
	if err != nil {
		logger.Warn("failed to parse templates", "error", err)
	}

	return &Handlers{
		weather:   wService,
		db:        database,
		templates: tmpl,
		fallback:  fallback,
		logger:    logger,
	}
}

// locationFromQuery reads an explicit location selection from the
// request, falling back to the configured default location.
func (h *Handlers) locationFromQuery(r *http.Request) weather.Location {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		return h.fallback
	}

	loc := weather.Location{
		Name:      q.Get("name"),
		Admin1:    q.Get("admin1"),
		Country:   q.Get("country"),
		Latitude:  lat,
		Longitude: lon,
		Timezone:  q.Get("tz"),
	}
	if loc.Timezone == "" {
		loc.Timezone = "auto"
	}
	return loc
}

func unitFromQuery(r *http.Request) string {
	if r.URL.Query().Get("unit") == "celsius" {
		return "celsius"
	}
	return "fahrenheit"
}

// HandleIndex renders the full dashboard page.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if h.templates == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	loc := h.locationFromQuery(r)
	unit := unitFromQuery(r)

	data := pageData{}
	fc, err := h.weather.GetForecast(r.Context(), loc, unit)
	if err != nil {
		h.logger.Error("forecast fetch failed", "error", err)
		data.Error = "Could not fetch weather. Please try again."
		w.WriteHeader(http.StatusBadGateway)
	} else {
		view := weather.BuildView(loc, unit, fc, time.Now())
		data.View = &view
	}

	if err := h.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		h.logger.Error("template execution failed", "error", err)
	}
}

// HandleWeatherFragment renders the dashboard body as an HTML fragment
// for the search, unit-toggle and refresh widgets.
func (h *Handlers) HandleWeatherFragment(w http.ResponseWriter, r *http.Request) {
	loc := h.locationFromQuery(r)
	unit := unitFromQuery(r)

	fc, err := h.weather.GetForecast(r.Context(), loc, unit)
	if err != nil {
		h.logger.Error("forecast fetch failed", "error", err)
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `<div class="error">Could not fetch weather. Please try again.</div>`)
		return
	}

	view := weather.BuildView(loc, unit, fc, time.Now())
	if err := h.templates.ExecuteTemplate(w, "weather_fragment", &view); err != nil {
		h.logger.Error("template execution failed", "error", err)
	}
}

// HandleSearch performs location autocomplete against the geocoding
// service. Always responds with a JSON array; failures and short
// queries both yield [].
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	if utf8.RuneCountInString(strings.TrimSpace(q)) < 2 {
		w.Write([]byte("[]"))
		return
	}

	places := h.weather.Geocode(r.Context(), q)
	data, err := json.Marshal(places)
	if err != nil {
		h.logger.Error("search encode failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(data); err != nil {
		h.logger.Warn("response write failed", "error", err)
	}
}

// HandleHealth reports liveness and cache database status.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
		}
	} else {
		status = "no_database"
	}

	w.Write([]byte(`{"status":"` + status + `"}`))
}

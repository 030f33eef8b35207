package weather

import (
	"math"
	"strings"
)

// Condition is the human-readable form of a WMO weather code.
type Condition struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// wmoCodes maps the WMO weather codes reported by Open-Meteo to a
// label and an emoji glyph. Codes not present fall back to Unknown.
var wmoCodes = map[int]Condition{
	0:  {"Clear sky", "☀️"},
	1:  {"Mainly clear", "🌤️"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Overcast", "☁️"},
	45: {"Foggy", "🌫️"},
	48: {"Rime fog", "🌫️"},
	51: {"Light drizzle", "🌦️"},
	53: {"Moderate drizzle", "🌦️"},
	55: {"Dense drizzle", "🌧️"},
	61: {"Slight rain", "🌧️"},
	63: {"Moderate rain", "🌧️"},
	65: {"Heavy rain", "🌧️"},
	71: {"Slight snowfall", "❄️"},
	73: {"Moderate snowfall", "❄️"},
	75: {"Heavy snowfall", "❄️"},
	77: {"Snow grains", "🌨️"},
	80: {"Slight showers", "🌦️"},
	81: {"Moderate showers", "🌦️"},
	82: {"Violent showers", "⛈️"},
	85: {"Slight snow showers", "🌨️"},
	86: {"Heavy snow showers", "🌨️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm + hail", "⛈️"},
	99: {"Thunderstorm + hail", "⛈️"},
}

// unknownCondition is returned for any code outside the table.
var unknownCondition = Condition{Label: "Unknown", Icon: "❓"}

// ResolveCondition looks up the label and icon for a WMO weather code.
// Total over all ints; unmapped codes resolve to ("Unknown", "❓").
func ResolveCondition(code int) Condition {
	if c, ok := wmoCodes[code]; ok {
		return c
	}
	return unknownCondition
}

// windDirs lists the 16 compass points clockwise from north.
var windDirs = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirLabel converts a wind bearing in degrees to a 16-point
// compass label. Bearings outside [0,360) wrap; NaN resolves to "N".
func WindDirLabel(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return windDirs[0]
	}
	i := int(math.Round(degrees/22.5)) % 16
	if i < 0 {
		i += 16
	}
	return windDirs[i]
}

// FormatLocation renders a location as "name[, admin1], country".
// The admin1 part is omitted when empty.
func FormatLocation(loc Location) string {
	parts := []string{loc.Name}
	if loc.Admin1 != "" {
		parts = append(parts, loc.Admin1)
	}
	parts = append(parts, loc.Country)
	return strings.Join(parts, ", ")
}

package weather

// Location is a place record as returned by the Open-Meteo geocoding API.
type Location struct {
	Name      string  `json:"name"`
	Admin1    string  `json:"admin1,omitempty"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// DefaultLocation is shown before the user picks a place.
var DefaultLocation = Location{
	Name:      "Bothell",
	Admin1:    "Washington",
	Country:   "United States",
	Latitude:  47.7623,
	Longitude: -122.2054,
	Timezone:  "America/Los_Angeles",
}

// ForecastResponse is the subset of the Open-Meteo forecast response
// this service consumes.
type ForecastResponse struct {
	Current CurrentBlock `json:"current"`
	Daily   DailyBlock   `json:"daily"`
}

// CurrentBlock holds the current-conditions variables.
type CurrentBlock struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	Humidity            int     `json:"relative_humidity_2m"`
	WeatherCode         int     `json:"weather_code"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WindDirection       float64 `json:"wind_direction_10m"`
	WindGusts           float64 `json:"wind_gusts_10m"`
	Precipitation       float64 `json:"precipitation"`
	CloudCover          int     `json:"cloud_cover"`
	IsDay               int     `json:"is_day"`
}

// DailyBlock holds five parallel series, one entry per forecast day.
// PrecipProbMax entries may be null in the API response.
type DailyBlock struct {
	Time          []string  `json:"time"`
	WeatherCode   []int     `json:"weather_code"`
	TempMax       []float64 `json:"temperature_2m_max"`
	TempMin       []float64 `json:"temperature_2m_min"`
	PrecipSum     []float64 `json:"precipitation_sum"`
	PrecipProbMax []*int    `json:"precipitation_probability_max"`
}

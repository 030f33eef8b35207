package weather

import (
	"fmt"
	"html/template"
	"time"

	"github.com/skycastapp/skycast/internal/anim"
)

// Stat is one entry in the current-conditions stats row.
type Stat struct {
	Icon  string
	Value string
	Label string
}

// ForecastCard is one day of the 5-day forecast strip. PrecipProb is
// empty when the probability is 10% or below.
type ForecastCard struct {
	DayLabel   string
	Icon       string
	High       string
	Low        string
	PrecipProb string
}

// View is the complete render model for one dashboard pass. It is
// derived from explicit inputs only; nothing in it is session state.
type View struct {
	Location      Location
	LocationLabel string
	TimeLabel     string
	DayNight      string
	Unit          string
	UnitSymbol    string
	Temperature   string
	Condition     Condition
	FeelsLike     string
	Stats         []Stat
	Precipitation string
	Forecast      []ForecastCard
	Overlay       template.HTML
	UpdatedAt     string
}

const (
	currentTimeLayout = "2006-01-02T15:04"
	dailyTimeLayout   = "2006-01-02"
)

// BuildView turns a forecast response into the render model. Pure
// except for reading now, which the caller supplies.
func BuildView(loc Location, tempUnit string, fc *ForecastResponse, now time.Time) View {
	cur := fc.Current
	cond := ResolveCondition(cur.WeatherCode)
	isDay := cur.IsDay != 0

	unitSymbol := "F"
	if tempUnit != "fahrenheit" {
		unitSymbol = "C"
	}

	dayNight := "☾ Night"
	if isDay {
		dayNight = "☀ Day"
	}

	timeLabel := cur.Time
	if t, err := time.Parse(currentTimeLayout, cur.Time); err == nil {
		timeLabel = t.Format("Monday, January 2  •  3:04 PM")
	}

	v := View{
		Location:      loc,
		LocationLabel: FormatLocation(loc),
		TimeLabel:     timeLabel,
		DayNight:      dayNight,
		Unit:          tempUnit,
		UnitSymbol:    unitSymbol,
		Temperature:   fmt.Sprintf("%.0f", cur.Temperature),
		Condition:     cond,
		FeelsLike:     fmt.Sprintf("Feels like %.0f°%s", cur.ApparentTemperature, unitSymbol),
		Stats: []Stat{
			{Icon: "💧", Value: fmt.Sprintf("%d%%", cur.Humidity), Label: "Humidity"},
			{Icon: "💨", Value: fmt.Sprintf("%.0f mph %s", cur.WindSpeed, WindDirLabel(cur.WindDirection)), Label: "Wind"},
			{Icon: "🌬️", Value: fmt.Sprintf("%.0f mph", cur.WindGusts), Label: "Gusts"},
			{Icon: "☁️", Value: fmt.Sprintf("%d%%", cur.CloudCover), Label: "Cloud Cover"},
		},
		Overlay:   anim.Overlay(cur.WeatherCode, isDay),
		UpdatedAt: now.Format("3:04 PM"),
	}

	if cur.Precipitation > 0 {
		v.Precipitation = fmt.Sprintf("🌧 Current precipitation: %.2f in", cur.Precipitation)
	}

	v.Forecast = buildForecastCards(fc.Daily, unitSymbol)

	return v
}

func buildForecastCards(daily DailyBlock, unitSymbol string) []ForecastCard {
	cards := make([]ForecastCard, 0, len(daily.Time))
	for i := range daily.Time {
		if i >= len(daily.WeatherCode) || i >= len(daily.TempMax) || i >= len(daily.TempMin) {
			break
		}

		dayLabel := daily.Time[i]
		if t, err := time.Parse(dailyTimeLayout, daily.Time[i]); err == nil {
			dayLabel = t.Format("Mon")
		}
		if i == 0 {
			dayLabel = "Today"
		}

		card := ForecastCard{
			DayLabel: dayLabel,
			Icon:     ResolveCondition(daily.WeatherCode[i]).Icon,
			High:     fmt.Sprintf("%.0f°%s", daily.TempMax[i], unitSymbol),
			Low:      fmt.Sprintf("%.0f°%s", daily.TempMin[i], unitSymbol),
		}

		// Probabilities of 10% or less are noise; null means 0.
		prob := 0
		if i < len(daily.PrecipProbMax) && daily.PrecipProbMax[i] != nil {
			prob = *daily.PrecipProbMax[i]
		}
		if prob > 10 {
			card.PrecipProb = fmt.Sprintf("💧 %d%%", prob)
		}

		cards = append(cards, card)
	}
	return cards
}

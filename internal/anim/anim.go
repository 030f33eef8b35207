// Package anim generates the decorative animated weather overlay shown
// behind the dashboard. Element positions and timings are drawn from a
// PRNG seeded by the weather code and day flag, so the same weather
// state always produces the same overlay and re-renders don't reshuffle
// the visuals.
package anim

import (
	"math"
	"math/rand"
)

// Family selects which animation the overlay plays.
type Family string

const (
	FamilyRain         Family = "rain"
	FamilyThunder      Family = "thunder"
	FamilySnow         Family = "snow"
	FamilyClearDay     Family = "clear_day"
	FamilyClearNight   Family = "clear_night"
	FamilyPartlyCloudy Family = "partly_cloudy"
	FamilyOvercast     Family = "overcast"
	FamilyFog          Family = "fog"
)

// Kind identifies the shape a single element renders as.
type Kind string

const (
	KindRaindrop  Kind = "raindrop"
	KindFlash     Kind = "flash"
	KindSnowflake Kind = "snowflake"
	KindStar      Kind = "star"
	KindSunGlow   Kind = "sun_glow"
	KindRayRing   Kind = "ray_ring"
	KindCloud     Kind = "cloud"
	KindFogBank   Kind = "fog_bank"
)

// Element is one decorative item in the overlay. Which fields are
// meaningful depends on Kind.
type Element struct {
	Kind      Kind
	Top       float64 // percent
	Left      float64 // percent
	Width     float64 // px
	Height    float64 // px
	Size      float64 // rem
	Delay     float64 // seconds
	Duration  float64 // seconds
	Opacity   float64
	Glyph     string
	Clockwise bool // ray rings only
}

// Classify picks the animation family for a weather code. Thunder wins
// over snow, snow over rain, and so on down to clear sky.
func Classify(code int, isDay bool) Family {
	switch code {
	case 95, 96, 99:
		return FamilyThunder
	case 71, 73, 75, 77, 85, 86:
		return FamilySnow
	case 51, 53, 55, 61, 63, 65, 80, 81, 82:
		return FamilyRain
	case 45, 48:
		return FamilyFog
	case 3:
		return FamilyOvercast
	case 1, 2:
		return FamilyPartlyCloudy
	}
	if isDay {
		return FamilyClearDay
	}
	return FamilyClearNight
}

// snowGlyphs are the characters a snowflake element may render as.
var snowGlyphs = []string{"❄", "❅", "❆", "·", "•"}

// seed derives the PRNG seed from the weather state.
func seed(code int, isDay bool) int64 {
	s := int64(code) * 31
	if !isDay {
		s += 1000
	}
	return s
}

// Generate produces the overlay elements for a weather code. The PRNG
// is seeded from (code, isDay) and scoped to this call, so repeated
// calls with the same inputs return identical sequences. The draw order
// per element is fixed: position, then size, delay, duration, opacity,
// glyph.
func Generate(code int, isDay bool) []Element {
	rng := rand.New(rand.NewSource(seed(code, isDay)))
	family := Classify(code, isDay)

	switch family {
	case FamilyRain, FamilyThunder:
		count := 30
		if code == 65 || code == 82 {
			count = 55
		}
		els := make([]Element, 0, count+1)
		for i := 0; i < count; i++ {
			els = append(els, Element{
				Kind:     KindRaindrop,
				Left:     float64(rng.Intn(101)),
				Height:   float64(12 + rng.Intn(17)),
				Delay:    round2(rng.Float64() * 3),
				Duration: round2(0.55 + rng.Float64()*0.75),
				Opacity:  round2(0.35 + rng.Float64()*0.3),
			})
		}
		if family == FamilyThunder {
			// Full-screen pulsing flash on a fixed 7s cycle.
			els = append(els, Element{
				Kind:     KindFlash,
				Delay:    0.5,
				Duration: 7,
				Opacity:  0.18,
			})
		}
		return els

	case FamilySnow:
		els := make([]Element, 0, 38)
		for i := 0; i < 38; i++ {
			els = append(els, Element{
				Kind:     KindSnowflake,
				Left:     float64(rng.Intn(101)),
				Size:     round1(0.7 + rng.Float64()),
				Delay:    round2(rng.Float64() * 12),
				Duration: round2(7 + rng.Float64()*9),
				Opacity:  round2(0.45 + rng.Float64()*0.35),
				Glyph:    snowGlyphs[rng.Intn(len(snowGlyphs))],
			})
		}
		return els

	case FamilyClearDay:
		// Sun glow plus two counter-rotating ray rings; no randomness.
		return []Element{
			{Kind: KindSunGlow, Width: 90, Duration: 4},
			{Kind: KindRayRing, Width: 130, Duration: 15, Clockwise: true},
			{Kind: KindRayRing, Width: 170, Duration: 25, Clockwise: false},
		}

	case FamilyClearNight:
		els := make([]Element, 0, 60)
		for i := 0; i < 60; i++ {
			els = append(els, Element{
				Kind:     KindStar,
				Top:      float64(2 + rng.Intn(64)),
				Left:     float64(rng.Intn(101)),
				Size:     round2(0.18 + rng.Float64()*0.27),
				Delay:    round2(rng.Float64() * 6),
				Duration: round2(2 + rng.Float64()*3),
			})
		}
		return els

	case FamilyPartlyCloudy, FamilyOvercast:
		count, opacity := 3, 0.10
		if family == FamilyOvercast {
			count, opacity = 6, 0.18
		}
		els := make([]Element, 0, count)
		for i := 0; i < count; i++ {
			w := float64(120 + rng.Intn(101))
			els = append(els, Element{
				Kind:     KindCloud,
				Top:      float64(3 + rng.Intn(38)),
				Width:    w,
				Height:   math.Floor(w / 2),
				Delay:    float64(rng.Intn(21)),
				Duration: float64(30 + rng.Intn(31)),
				Opacity:  opacity,
			})
		}
		return els

	case FamilyFog:
		els := make([]Element, 0, 6)
		for i := 0; i < 6; i++ {
			els = append(els, Element{
				Kind:     KindFogBank,
				Top:      float64(5 + rng.Intn(81)),
				Height:   float64(50 + rng.Intn(71)),
				Delay:    float64(rng.Intn(26)),
				Duration: float64(18 + rng.Intn(18)),
				Opacity:  round2(0.05 + rng.Float64()*0.07),
			})
		}
		return els
	}

	return nil
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

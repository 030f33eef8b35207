package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code  int
		isDay bool
		want  Family
	}{
		{95, true, FamilyThunder},
		{96, false, FamilyThunder},
		{99, true, FamilyThunder},
		{71, true, FamilySnow},
		{77, false, FamilySnow},
		{86, true, FamilySnow},
		{51, true, FamilyRain},
		{65, false, FamilyRain},
		{80, true, FamilyRain},
		// 82 is a violent-shower code: rain, not thunder.
		{82, true, FamilyRain},
		{45, true, FamilyFog},
		{48, false, FamilyFog},
		{3, true, FamilyOvercast},
		{3, false, FamilyOvercast},
		{1, true, FamilyPartlyCloudy},
		{2, false, FamilyPartlyCloudy},
		{0, true, FamilyClearDay},
		{0, false, FamilyClearNight},
		// Unmapped codes fall through to clear.
		{42, true, FamilyClearDay},
		{42, false, FamilyClearNight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.code, tt.isDay), "code %d day %v", tt.code, tt.isDay)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	// Same inputs must yield the identical sequence: visuals must not
	// reshuffle between renders of the same weather state.
	for _, code := range []int{0, 1, 3, 45, 61, 75, 82, 95} {
		for _, isDay := range []bool{true, false} {
			first := Generate(code, isDay)
			second := Generate(code, isDay)
			assert.Equal(t, first, second, "code %d day %v", code, isDay)
		}
	}
}

func TestGenerate_DayNightSeedsDiffer(t *testing.T) {
	day := Generate(61, true)
	night := Generate(61, false)
	assert.NotEqual(t, day, night)
}

func TestGenerate_RainCounts(t *testing.T) {
	assert.Len(t, Generate(61, true), 30)
	// Heavy rain and violent showers use the dense variant.
	assert.Len(t, Generate(65, true), 55)
	els := Generate(82, true)
	require.Len(t, els, 55)
	for _, el := range els {
		assert.Equal(t, KindRaindrop, el.Kind)
	}
}

func TestGenerate_ThunderAddsFlash(t *testing.T) {
	els := Generate(95, true)
	require.Len(t, els, 31)
	assert.Equal(t, KindFlash, els[30].Kind)
	assert.Equal(t, float64(7), els[30].Duration)

	for _, el := range els[:30] {
		assert.Equal(t, KindRaindrop, el.Kind)
	}
}

func TestGenerate_FamilyCounts(t *testing.T) {
	assert.Len(t, Generate(71, true), 38)  // snow
	assert.Len(t, Generate(0, true), 3)    // clear day
	assert.Len(t, Generate(0, false), 60)  // clear night
	assert.Len(t, Generate(1, true), 3)    // partly cloudy
	assert.Len(t, Generate(3, true), 6)    // overcast
	assert.Len(t, Generate(45, false), 6)  // fog
}

func TestGenerate_RainAttributeRanges(t *testing.T) {
	for _, el := range Generate(63, true) {
		assert.Equal(t, KindRaindrop, el.Kind)
		assert.GreaterOrEqual(t, el.Left, 0.0)
		assert.LessOrEqual(t, el.Left, 100.0)
		assert.GreaterOrEqual(t, el.Height, 12.0)
		assert.LessOrEqual(t, el.Height, 28.0)
		assert.GreaterOrEqual(t, el.Delay, 0.0)
		assert.LessOrEqual(t, el.Delay, 3.0)
		assert.GreaterOrEqual(t, el.Duration, 0.55)
		assert.LessOrEqual(t, el.Duration, 1.3)
		assert.GreaterOrEqual(t, el.Opacity, 0.35)
		assert.LessOrEqual(t, el.Opacity, 0.65)
	}
}

func TestGenerate_SnowAttributeRanges(t *testing.T) {
	glyphs := map[string]bool{"❄": true, "❅": true, "❆": true, "·": true, "•": true}
	for _, el := range Generate(73, false) {
		assert.Equal(t, KindSnowflake, el.Kind)
		assert.GreaterOrEqual(t, el.Size, 0.7)
		assert.LessOrEqual(t, el.Size, 1.7)
		assert.GreaterOrEqual(t, el.Delay, 0.0)
		assert.LessOrEqual(t, el.Delay, 12.0)
		assert.GreaterOrEqual(t, el.Duration, 7.0)
		assert.LessOrEqual(t, el.Duration, 16.0)
		assert.GreaterOrEqual(t, el.Opacity, 0.45)
		assert.LessOrEqual(t, el.Opacity, 0.8)
		assert.True(t, glyphs[el.Glyph], "unexpected glyph %q", el.Glyph)
	}
}

func TestGenerate_StarAttributeRanges(t *testing.T) {
	for _, el := range Generate(0, false) {
		assert.Equal(t, KindStar, el.Kind)
		assert.GreaterOrEqual(t, el.Top, 2.0)
		assert.LessOrEqual(t, el.Top, 65.0)
		assert.GreaterOrEqual(t, el.Size, 0.18)
		assert.LessOrEqual(t, el.Size, 0.45)
		assert.GreaterOrEqual(t, el.Duration, 2.0)
		assert.LessOrEqual(t, el.Duration, 5.0)
	}
}

func TestGenerate_CloudOpacityFixed(t *testing.T) {
	for _, el := range Generate(1, true) {
		assert.Equal(t, 0.10, el.Opacity)
		assert.GreaterOrEqual(t, el.Width, 120.0)
		assert.LessOrEqual(t, el.Width, 220.0)
	}
	for _, el := range Generate(3, true) {
		assert.Equal(t, 0.18, el.Opacity)
	}
}

func TestGenerate_FogAttributeRanges(t *testing.T) {
	for _, el := range Generate(48, true) {
		assert.Equal(t, KindFogBank, el.Kind)
		assert.GreaterOrEqual(t, el.Top, 5.0)
		assert.LessOrEqual(t, el.Top, 85.0)
		assert.GreaterOrEqual(t, el.Height, 50.0)
		assert.LessOrEqual(t, el.Height, 120.0)
		assert.GreaterOrEqual(t, el.Opacity, 0.05)
		assert.LessOrEqual(t, el.Opacity, 0.12)
	}
}

func TestGenerate_ClearDayIsFixed(t *testing.T) {
	els := Generate(0, true)
	require.Len(t, els, 3)
	assert.Equal(t, KindSunGlow, els[0].Kind)
	assert.Equal(t, KindRayRing, els[1].Kind)
	assert.True(t, els[1].Clockwise)
	assert.Equal(t, KindRayRing, els[2].Kind)
	assert.False(t, els[2].Clockwise)
}

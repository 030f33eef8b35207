package anim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_Deterministic(t *testing.T) {
	assert.Equal(t, Overlay(61, true), Overlay(61, true))
}

func TestOverlay_ContainsKeyframesAndWrapper(t *testing.T) {
	html := string(Overlay(61, true))
	assert.Contains(t, html, "@keyframes wt-rain")
	assert.Contains(t, html, "pointer-events:none")
	assert.True(t, strings.HasSuffix(html, "</div>"))
}

func TestOverlay_ThunderHasFlash(t *testing.T) {
	assert.Contains(t, string(Overlay(95, true)), "wt-flash 7s .5s")
	assert.NotContains(t, string(Overlay(82, true)), "wt-flash 7s .5s")
}

func TestOverlay_ElementCountMatchesGenerate(t *testing.T) {
	html := string(Overlay(0, false))
	// 60 stars plus the wrapper div.
	assert.Equal(t, 61, strings.Count(html, "<div"))
}

func TestOverlay_SnowUsesGlyphs(t *testing.T) {
	html := string(Overlay(75, false))
	assert.Contains(t, html, "wt-snow")
	assert.Contains(t, html, "user-select:none")
}

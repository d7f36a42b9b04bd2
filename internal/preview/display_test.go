package preview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgmotion/svgmotion/internal/preview"
)

func TestNormalizeForDisplay_DimensionsFromViewBox(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 32 16"><path d="M0 0" fill="#ff0000"/></svg>`)
	assert.Contains(t, out, `width="32"`)
	assert.Contains(t, out, `height="16"`)
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
}

func TestNormalizeForDisplay_DefaultDimensions(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg><path d="M0 0"/></svg>`)
	assert.Contains(t, out, `width="24"`)
	assert.Contains(t, out, `height="24"`)
}

func TestNormalizeForDisplay_KeepsExplicitDimensions(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg width="100" height="50" viewBox="0 0 32 16"/>`)
	assert.Contains(t, out, `width="100"`)
	assert.Contains(t, out, `height="50"`)
	assert.NotContains(t, out, `width="32"`)
}

func TestNormalizeForDisplay_MonochromeUsesCurrentColor(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 24 24"><path d="M0 0" fill="black"/><path d="M1 1" style="stroke: #000"/></svg>`)
	assert.Contains(t, out, `fill="currentColor"`)
	assert.Contains(t, out, `style="stroke: currentColor"`)
	assert.NotContains(t, out, `"black"`)
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24" fill="currentColor">`)
}

func TestNormalizeForDisplay_ColoredArtworkUntouched(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 24 24"><path d="M0 0" fill="black"/><path d="M1 1" fill="#3366ff"/></svg>`)
	assert.Contains(t, out, `fill="black"`)
	assert.Contains(t, out, `fill="#3366ff"`)
	assert.NotContains(t, out, "currentColor")
}

func TestNormalizeForDisplay_ColoredStyleUntouched(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 24 24"><path d="M0 0" style="fill: orange; stroke: black"/></svg>`)
	assert.NotContains(t, out, "currentColor")
}

func TestNormalizeForDisplay_MalformedFallback(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 48 48"><path fill="black"></svg>`)
	assert.Contains(t, out, `width="48" height="48"`)
	assert.Contains(t, out, `fill="currentColor"`)
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
}

func TestNormalizeForDisplay_MalformedColored(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 48 48"><path fill="black"><path stroke="red"></svg>`)
	assert.Contains(t, out, `fill="black"`)
	assert.NotContains(t, out, "currentColor")
}

func TestNormalizeForDisplay_StylesheetColorsUntouched(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 24 24"><style>.a{fill:#e33}</style><path class="a" d="M0 0"/><path d="M1 1" fill="#000"/></svg>`)
	assert.Contains(t, out, `fill="#000"`)
	assert.NotContains(t, out, "currentColor")
	assert.Contains(t, out, `width="24"`)
}

func TestNormalizeForDisplay_NeutralStylesheetStillMonochrome(t *testing.T) {
	out := preview.NormalizeForDisplay(`<svg viewBox="0 0 24 24"><style>.a{fill:none;stroke:black}</style><path class="a" d="M0 0"/><path d="M1 1" fill="#000"/></svg>`)
	assert.Contains(t, out, `<path d="M1 1" fill="currentColor"/>`)
}

func TestNormalizeForDisplay_TiersAgreeOnStylesheets(t *testing.T) {
	wellFormed := `<svg viewBox="0 0 24 24"><style>.a{fill:#e33}</style><path fill="black"/></svg>`
	malformed := `<svg viewBox="0 0 24 24"><style>.a{fill:#e33}</style><path fill="black"></svg>`
	assert.NotContains(t, preview.NormalizeForDisplay(wellFormed), "currentColor")
	assert.NotContains(t, preview.NormalizeForDisplay(malformed), "currentColor")
}

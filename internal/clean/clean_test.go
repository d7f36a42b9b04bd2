package clean_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgmotion/svgmotion/internal/clean"
	"github.com/svgmotion/svgmotion/internal/normalize"
)

const ns = `xmlns="http://www.w3.org/2000/svg"`

func TestStripOwnedArtifacts_NoArtifacts(t *testing.T) {
	in := `<svg ` + ns + `><path d="M0 0"/></svg>`
	assert.Equal(t, in, clean.StripOwnedArtifacts(in))
}

func TestStripOwnedArtifacts_RemovesAllReservedElements(t *testing.T) {
	in := `<svg ` + ns + `>` +
		`<style id="svgmotion-style">@keyframes spin {}</style>` +
		`<script id="svgmotion-script">void 0</script>` +
		`<style id="svgmotion-style">duplicate</style>` +
		`<defs><style id="svgmotion-style">nested</style></defs>` +
		`<path d="M0 0"/></svg>`

	out := clean.StripOwnedArtifacts(in)
	assert.Equal(t, `<svg `+ns+`><defs/><path d="M0 0"/></svg>`, out)
}

func TestStripOwnedArtifacts_KeepsForeignStyles(t *testing.T) {
	in := `<svg ` + ns + `><style id="brand">.a { fill: red; }</style><path class="a" d="M0 0"/></svg>`
	assert.Equal(t, in, clean.StripOwnedArtifacts(in))
}

func TestStripOwnedArtifacts_UnwrapsInPlace(t *testing.T) {
	in := `<svg ` + ns + `><rect/><g class="svgmotion-wrap-1-abcd1234"><path d="a"/><circle/></g><line/></svg>`
	out := clean.StripOwnedArtifacts(in)
	assert.Equal(t, `<svg `+ns+`><rect/><path d="a"/><circle/><line/></svg>`, out)
}

func TestStripOwnedArtifacts_UnwrapsNested(t *testing.T) {
	in := `<svg ` + ns + `><g class="svgmotion-wrap-2-x"><g class="svgmotion-wrap-1-y"><path d="a"/></g></g></svg>`
	out := clean.StripOwnedArtifacts(in)
	assert.Equal(t, `<svg `+ns+`><path d="a"/></svg>`, out)
}

func TestStripOwnedArtifacts_KeepsForeignGroups(t *testing.T) {
	in := `<svg ` + ns + `><g class="layer"><path d="a"/></g></svg>`
	assert.Equal(t, in, clean.StripOwnedArtifacts(in))
}

func TestStripOwnedArtifacts_LegacyStyles(t *testing.T) {
	legacy := []string{
		`<style>@keyframes spin { to { transform: rotate(360deg); } } svg { animation: spin 1s linear infinite; }</style>`,
		`<style>.svgmotion-wrap-old { animation: pulse 1s; }</style>`,
	}
	for _, block := range legacy {
		in := `<svg ` + ns + `>` + block + `<path d="a"/></svg>`
		assert.Equal(t, `<svg `+ns+`><path d="a"/></svg>`, clean.StripOwnedArtifacts(in), "block %s", block)
	}
}

func TestStripOwnedArtifacts_MalformedFallsBackToText(t *testing.T) {
	in := `<svg><style id="svgmotion-style">@keyframes spin {}</style>` +
		`<script id='svgmotion-script'><![CDATA[x()]]></script>` +
		`<g class="svgmotion-wrap-9"><path d="M0 0"></g></svg>`
	out := clean.StripOwnedArtifacts(in)
	assert.Equal(t, `<svg><path d="M0 0"></svg>`, out)
}

func TestStripOwnedArtifacts_MalformedNestedGroups(t *testing.T) {
	in := `<svg><g class="svgmotion-wrap-1"><g><path></g><g/></g><rect></svg>`
	out := clean.StripOwnedArtifacts(in)
	assert.Equal(t, `<svg><g><path></g><g/><rect></svg>`, out)
}

func TestStripOwnedArtifacts_Stable(t *testing.T) {
	inputs := []string{
		`<svg ` + ns + `><path d="a"/></svg>`,
		`<svg><style id="svgmotion-style">x</style><g class="svgmotion-wrap-1"><path/></g></svg>`,
		`<svg><style id="svgmotion-style">x</style><g class="svgmotion-wrap-1"><path></g></svg>`,
		`<svg><g class="svgmotion-wrap-1"><g class="svgmotion-wrap-2"><path/></g></svg>`,
		`not xml at all`,
		``,
		`<html><style id="svgmotion-style"></style></html>`,
	}
	for _, in := range inputs {
		once := clean.StripOwnedArtifacts(in)
		assert.Equal(t, once, clean.StripOwnedArtifacts(once), "input %q", in)
		assert.NotContains(t, once, "svgmotion-style")
		assert.NotContains(t, once, "svgmotion-wrap-")
	}
}

func TestStripOwnedArtifacts_RepeatedAttributeCollapses(t *testing.T) {
	in := `<svg xmlns="a" xmlns="b"><style id="svgmotion-style">x</style><rect/></svg>`
	out := clean.StripOwnedArtifacts(in)
	assert.Equal(t, `<svg xmlns="b"><rect/></svg>`, out)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`, normalize.EnsureNamespace(out))
}

func TestIsLegacyStyle(t *testing.T) {
	assert.True(t, clean.IsLegacyStyle("@keyframes a {} svg { animation: a 1s; }"))
	assert.True(t, clean.IsLegacyStyle(".svgmotion-wrap-x{}"))
	assert.False(t, clean.IsLegacyStyle("svg { animation: a 1s; }"), "no keyframes")
	assert.False(t, clean.IsLegacyStyle("@keyframes a {} .icon { animation: a 1s; }"))
	assert.False(t, clean.IsLegacyStyle(strings.Repeat(" ", 10)))
}

package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgmotion/svgmotion/internal/clean"
	"github.com/svgmotion/svgmotion/internal/detect"
	"github.com/svgmotion/svgmotion/internal/embed"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// FuzzEmbed feeds arbitrary documents through the embed, detect and clean
// pipeline. None of them may panic, whatever the input.
//
//	go test -fuzz=FuzzEmbed -fuzztime=30s ./internal/embed/
func FuzzEmbed(f *testing.F) {
	f.Add(icon, uint8(1))
	f.Add(`<svg><path></svg>`, uint8(6))
	f.Add(`<svg/>`, uint8(8))
	f.Add(`<svg width=24/>`, uint8(3))
	f.Add(`<svg xmlns="a" xmlns='b'><g class="svgmotion-wrap-1"><g class="svgmotion-wrap-2"></g></svg>`, uint8(2))
	f.Add(`<svg><style id="svgmotion-style"/><script id="svgmotion-script">]]></script></svg>`, uint8(7))
	f.Add("", uint8(0))

	types := model.Types()
	f.Fuzz(func(t *testing.T, doc string, pick uint8) {
		typ := types[int(pick)%len(types)]
		out := embed.Embed(doc, typ, model.DefaultSettings())

		d1 := detect.Detect(out)
		d2 := detect.Detect(out)
		assert.Equal(t, d1, d2)

		assert.Equal(t, clean.StripOwnedArtifacts(out), clean.StripOwnedArtifacts(out))
	})
}

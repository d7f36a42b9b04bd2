package svgmotion

import (
	"github.com/svgmotion/svgmotion/internal/clean"
	"github.com/svgmotion/svgmotion/internal/detect"
	"github.com/svgmotion/svgmotion/internal/embed"
	"github.com/svgmotion/svgmotion/internal/normalize"
	"github.com/svgmotion/svgmotion/internal/preview"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// EnsureNamespace guarantees exactly one xmlns on the root, equal to the SVG namespace.
func EnsureNamespace(doc string) string {
	return normalize.EnsureNamespace(doc)
}

// StripOwnedArtifacts removes every artifact a previous Embed added.
func StripOwnedArtifacts(doc string) string {
	return clean.StripOwnedArtifacts(doc)
}

// Embed replaces any existing animation in doc with t. Settings are
// embedded verbatim; use Settings.Validate to reject out-of-range input first.
func Embed(doc string, t model.AnimationType, s model.Settings) string {
	return embed.Embed(doc, t, s)
}

// Detect returns the embedded animation, or nil when doc has none.
func Detect(doc string) *model.Detected {
	return detect.Detect(doc)
}

// PreviewOptions configures a PreviewCache.
type PreviewOptions = preview.Options

// PreviewCache materializes display copies of documents on disk.
type PreviewCache struct {
	cache *preview.Cache
	dir   string
}

// NewPreviewCache returns a cache writing preview files under dir.
func NewPreviewCache(dir string, opts PreviewOptions) *PreviewCache {
	return &PreviewCache{cache: preview.NewDir(dir, opts), dir: dir}
}

// Materialize returns the path of a display copy of content for name.
// Errors mean the preview is unavailable; the canonical document is unaffected.
func (p *PreviewCache) Materialize(name, content string) (string, error) {
	return p.cache.Materialize(name, content)
}

// Clear removes every cached preview file.
func (p *PreviewCache) Clear() error {
	return p.cache.Clear()
}

// Dir returns the directory previews are written to.
func (p *PreviewCache) Dir() string {
	return p.dir
}

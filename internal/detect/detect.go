// Package detect recovers animation settings from the artifacts a document
// carries, so an editor can reopen an animated icon with its parameters.
package detect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/svgmotion/svgmotion/internal/draw"
	"github.com/svgmotion/svgmotion/internal/svgdoc"
	"github.com/svgmotion/svgmotion/pkg/metrics"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// Detect returns the animation embedded in text, or nil when no style block
// carries a recognizable animation.
func Detect(text string) *model.Detected {
	metrics.Default().RecordDetect()

	blobs := svgdoc.Inspect("detect", text, styleTexts, func(raw string) []string {
		return []string{raw}
	})
	return fromCSS(strings.Join(blobs, "\n"))
}

func styleTexts(root *etree.Element) ([]string, error) {
	var out []string
	for _, el := range root.FindElements("//style") {
		out = append(out, svgdoc.ElementText(el))
	}
	return out, nil
}

func keyframesRegex(names ...string) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`@keyframes\s+(?:` + strings.Join(quoted, "|") + `)\s*\{`)
}

const (
	durationPattern  = `(-?\d*\.?\d+)s`
	timingPattern    = `(cubic-bezier\([^)]*\)|steps\([^)]*\)|[a-zA-Z-]+)`
	iterationPattern = `(infinite|\d+)`
	directionPattern = `(alternate-reverse|alternate|reverse|normal)\b`
	argsPattern      = `\s+` + durationPattern + `\s+` + timingPattern + `\s+(?:` + durationPattern + `\s+)?` +
		iterationPattern + `\s+` + directionPattern
)

var (
	drawLoopRegex    = keyframesRegex(draw.KeyframesDrawLoop)
	drawReverseRegex = keyframesRegex(draw.KeyframesDrawReverse, "undraw")
	drawRegex        = keyframesRegex(draw.KeyframesDraw)

	drawReverseDeclRegex = regexp.MustCompile(`animation\s*:\s*(?:draw-reverse|undraw)` + argsPattern)
	drawDeclRegex        = regexp.MustCompile(`animation\s*:\s*draw` + argsPattern)

	animationNameRegex = regexp.MustCompile(`animation\s*:\s*([a-zA-Z_][\w-]*)`)

	// The wrapper-class rule, or the bare svg rule of legacy and text-fallback output.
	scopedDeclRegex = regexp.MustCompile(`(?:\.` + regexp.QuoteMeta(model.WrapperClassPrefix) +
		`[\w-]*|(?:^|[\s,;{}])svg)\s*\{[^}]*?animation\s*:\s*([a-zA-Z_][\w-]*)` + argsPattern)
)

func fromCSS(css string) *model.Detected {
	switch {
	case drawLoopRegex.MatchString(css):
		return &model.Detected{Type: model.AnimationDrawLoop, Settings: model.DrawLoopSettings()}
	case drawReverseRegex.MatchString(css):
		return &model.Detected{Type: model.AnimationDrawReverse, Settings: settingsFrom(drawReverseDeclRegex.FindStringSubmatch(css), 1)}
	case drawRegex.MatchString(css):
		return &model.Detected{Type: model.AnimationDraw, Settings: settingsFrom(drawDeclRegex.FindStringSubmatch(css), 1)}
	}

	name := animationNameRegex.FindStringSubmatch(css)
	if name == nil {
		return nil
	}
	if m := scopedDeclRegex.FindStringSubmatch(css); m != nil {
		return &model.Detected{Type: model.AnimationType(m[1]), Settings: settingsFrom(m, 2)}
	}
	return &model.Detected{Type: model.AnimationType(name[1]), Settings: model.DefaultSettings()}
}

// settingsFrom reads duration, timing, optional delay, iteration and
// direction from consecutive submatches starting at first.
func settingsFrom(m []string, first int) model.Settings {
	s := model.DefaultSettings()
	if m == nil {
		return s
	}
	g := m[first:]
	if v, err := strconv.ParseFloat(g[0], 64); err == nil {
		s.Duration = v
	}
	s.Timing = g[1]
	if g[2] != "" {
		if v, err := strconv.ParseFloat(g[2], 64); err == nil {
			s.Delay = v
		}
	}
	s.Iteration = g[3]
	s.Direction = model.Direction(g[4])
	return s
}

// Package embed writes animation artifacts into svg documents.
package embed

import (
	"github.com/beevik/etree"

	"github.com/svgmotion/svgmotion/internal/clean"
	"github.com/svgmotion/svgmotion/internal/draw"
	"github.com/svgmotion/svgmotion/internal/normalize"
	"github.com/svgmotion/svgmotion/internal/svgdoc"
	"github.com/svgmotion/svgmotion/pkg/logging"
	"github.com/svgmotion/svgmotion/pkg/metrics"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// fallbackSelector scopes CSS-family rules when no wrapper group can be
// inserted. The whole document animates instead of its content group.
const fallbackSelector = "svg"

// Embed replaces any previous animation in text with t using settings s.
// Settings are written verbatim; callers validate them if they need to.
// Embed never fails: unparseable input degrades to text splicing, and
// input with no svg root is returned cleaned but otherwise unchanged.
func Embed(text string, t model.AnimationType, s model.Settings) string {
	metrics.Default().RecordEmbed()

	text = clean.StripOwnedArtifacts(text)
	text = normalize.EnsureNamespace(text)

	switch {
	case t.IsDrawFamily():
		a := drawArtifacts(t, s)
		return svgdoc.Transform("embed", text,
			func(_ *etree.Document, root *etree.Element) error {
				insertDraw(root, a)
				return nil
			},
			func(text string) (string, bool) {
				return svgdoc.InsertAfterOpenTag(text, drawMarkup(a))
			})

	case t.IsCSSFamily():
		return svgdoc.Transform("embed", text,
			func(_ *etree.Document, root *etree.Element) error {
				insertCSS(root, t, s)
				return nil
			},
			func(text string) (string, bool) {
				return svgdoc.InsertAfterOpenTag(text, styleMarkup(cssRule(t, fallbackSelector, s)))
			})
	}

	if t != model.AnimationNone {
		logging.Warn("unknown animation type, leaving document unanimated", logging.Fields{"type": string(t)})
	}
	return text
}

func drawArtifacts(t model.AnimationType, s model.Settings) draw.Artifacts {
	switch t {
	case model.AnimationDrawLoop:
		return draw.BuildLoop(s)
	case model.AnimationDrawReverse:
		return draw.Build(s, true)
	default:
		return draw.Build(s, false)
	}
}

func newStyle(css string) *etree.Element {
	style := etree.NewElement("style")
	style.CreateAttr("id", model.StyleID)
	style.SetText(css)
	return style
}

func insertDraw(root *etree.Element, a draw.Artifacts) {
	script := etree.NewElement("script")
	script.CreateAttr("id", model.ScriptID)
	script.CreateCData(a.Script)

	root.InsertChildAt(0, newStyle(a.CSS))
	root.InsertChildAt(1, script)
}

func insertCSS(root *etree.Element, t model.AnimationType, s model.Settings) {
	class := model.NewWrapperClass()

	group := etree.NewElement("g")
	group.CreateAttr("class", class)
	for _, tok := range append([]etree.Token(nil), root.Child...) {
		group.AddChild(tok)
	}

	root.AddChild(newStyle(cssRule(t, "."+class, s)))
	root.AddChild(group)
}

func styleMarkup(css string) string {
	return `<style id="` + model.StyleID + `">` + css + `</style>`
}

func drawMarkup(a draw.Artifacts) string {
	return styleMarkup(a.CSS) +
		`<script id="` + model.ScriptID + `"><![CDATA[` + a.Script + `]]></script>`
}

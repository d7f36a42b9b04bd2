// Package clean strips every engine-owned artifact from an svg document.
//
// Ownership is recognized only through the reserved markers in pkg/model
// plus a heuristic for style blocks written by earlier tool versions.
// Running StripOwnedArtifacts on its own output is a no-op.
package clean

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/svgmotion/svgmotion/internal/svgdoc"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// StripOwnedArtifacts removes reserved style and script elements, unwraps
// reserved wrapper groups and drops legacy animation style blocks.
//
// Parseable input is re-serialized, so a repeated attribute on one element
// collapses to its last value: <svg xmlns="a" xmlns="b"> comes back as
// <svg xmlns="b">. Embed runs namespace normalization right after, which
// settles the root's xmlns either way.
func StripOwnedArtifacts(text string) string {
	return svgdoc.Transform("strip-artifacts", text, stripStructured, stripText)
}

var (
	legacySVGRuleRegex = regexp.MustCompile(`(?s)(?:^|[\s,;{}])svg\s*\{[^}]*animation\s*:`)
	keyframesRegex     = regexp.MustCompile(`@keyframes\s`)
)

// IsLegacyStyle reports whether css looks like an animation block written by
// an earlier version: keyframes plus a bare svg animation rule, or any rule
// on the reserved wrapper class.
func IsLegacyStyle(css string) bool {
	if strings.Contains(css, "."+model.WrapperClassPrefix) {
		return true
	}
	return keyframesRegex.MatchString(css) && legacySVGRuleRegex.MatchString(css)
}

func isReservedID(id string) bool {
	return id == model.StyleID || id == model.ScriptID
}

func stripStructured(_ *etree.Document, root *etree.Element) error {
	var doomed []*etree.Element
	for _, el := range root.FindElements("//*") {
		switch el.Tag {
		case "style":
			if isReservedID(el.SelectAttrValue("id", "")) || IsLegacyStyle(svgdoc.ElementText(el)) {
				doomed = append(doomed, el)
			}
		case "script":
			if isReservedID(el.SelectAttrValue("id", "")) {
				doomed = append(doomed, el)
			}
		}
	}
	for _, el := range doomed {
		if p := el.Parent(); p != nil {
			p.RemoveChild(el)
		}
	}

	// Unwrap one group at a time; unwrapping reparents descendants, so the
	// search restarts after each change.
	for {
		g := findWrapper(root)
		if g == nil {
			return nil
		}
		svgdoc.Unwrap(g)
	}
}

func findWrapper(root *etree.Element) *etree.Element {
	for _, g := range root.FindElements("//g") {
		if svgdoc.HasClassPrefix(g, model.WrapperClassPrefix) {
			return g
		}
	}
	return nil
}

var (
	ownedBlockRegex = regexp.MustCompile(`(?is)<(?:style|script)\b[^>]*\bid\s*=\s*["'](?:` +
		regexp.QuoteMeta(model.StyleID) + `|` + regexp.QuoteMeta(model.ScriptID) +
		`)["'][^>]*?(?:/>|>.*?</(?:style|script)\s*>)`)
	anyStyleRegex    = regexp.MustCompile(`(?is)<style\b[^>]*>(.*?)</style\s*>`)
	wrapperOpenRegex = regexp.MustCompile(`(?is)<g\b[^>]*\bclass\s*=\s*["'][^"']*` +
		regexp.QuoteMeta(model.WrapperClassPrefix) + `[^"']*["'][^>]*>`)
	groupTagRegex = regexp.MustCompile(`(?is)<g\b[^>]*?(/?)>|</g\s*>`)
)

func stripText(text string) (string, bool) {
	text = ownedBlockRegex.ReplaceAllString(text, "")
	text = anyStyleRegex.ReplaceAllStringFunc(text, func(block string) string {
		body := anyStyleRegex.FindStringSubmatch(block)[1]
		if IsLegacyStyle(body) {
			return ""
		}
		return block
	})

	for {
		next, changed := unwrapFirstText(text)
		if !changed {
			return text, true
		}
		text = next
	}
}

// unwrapFirstText removes the first wrapper group's tags while keeping its
// content. A wrapper without a matching close tag is only stripped of its
// opening tag.
func unwrapFirstText(text string) (string, bool) {
	loc := wrapperOpenRegex.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	open := text[loc[0]:loc[1]]
	if strings.HasSuffix(open, "/>") {
		return text[:loc[0]] + text[loc[1]:], true
	}

	depth := 1
	rest := text[loc[1]:]
	for _, m := range groupTagRegex.FindAllStringSubmatchIndex(rest, -1) {
		tag := rest[m[0]:m[1]]
		switch {
		case strings.HasPrefix(tag, "</"):
			depth--
		case m[2] >= 0 && m[3] > m[2]:
			// self-closing <g/>
		default:
			depth++
		}
		if depth == 0 {
			closeStart, closeEnd := loc[1]+m[0], loc[1]+m[1]
			return text[:loc[0]] + text[loc[1]:closeStart] + text[closeEnd:], true
		}
	}
	return text[:loc[0]] + text[loc[1]:], true
}

package preview

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/svgmotion/svgmotion/internal/normalize"
	"github.com/svgmotion/svgmotion/internal/svgdoc"
)

// DefaultSize is used for width and height when neither they nor a viewBox are present.
const DefaultSize = "24"

const currentColor = "currentColor"

var colorProps = []string{"fill", "stroke", "color", "stop-color"}

// NormalizeForDisplay prepares a document for preview: it guarantees the
// namespace and explicit dimensions, and when the artwork is monochrome
// black it rewrites black paint to currentColor so previews tint with the
// surrounding theme.
func NormalizeForDisplay(text string) string {
	text = normalize.EnsureNamespace(text)
	return svgdoc.Transform("preview-normalize", text, displayStructured, displayText)
}

func displayStructured(_ *etree.Document, root *etree.Element) error {
	w, h := dimensionsFromViewBox(root.SelectAttrValue("viewBox", ""))
	if root.SelectAttr("width") == nil {
		root.CreateAttr("width", w)
	}
	if root.SelectAttr("height") == nil {
		root.CreateAttr("height", h)
	}

	elements := append([]*etree.Element{root}, root.FindElements("//*")...)
	if !stylesheetsNeutral(root) {
		return nil
	}
	for _, el := range elements {
		for _, prop := range colorProps {
			if v := el.SelectAttrValue(prop, ""); v != "" && !isNeutral(v) {
				return nil
			}
		}
		if !styleIsNeutral(el.SelectAttrValue("style", "")) {
			return nil
		}
	}

	for _, el := range elements {
		for _, prop := range []string{"fill", "stroke"} {
			if a := el.SelectAttr(prop); a != nil && isBlack(a.Value) {
				a.Value = currentColor
			}
		}
		if a := el.SelectAttr("style"); a != nil {
			a.Value = styleBlackRegex.ReplaceAllString(a.Value, "${1}"+currentColor)
		}
	}
	if root.SelectAttr("fill") == nil {
		root.CreateAttr("fill", currentColor)
	}
	return nil
}

var (
	widthAttrRegex   = regexp.MustCompile(`(?is)\swidth\s*=`)
	heightAttrRegex  = regexp.MustCompile(`(?is)\sheight\s*=`)
	viewBoxAttrRegex = regexp.MustCompile(`(?is)\sviewBox\s*=\s*["']([^"']*)["']`)

	colorDeclRegex  = regexp.MustCompile(`(?i)\b(?:fill|stroke|color|stop-color)\s*(?:=\s*["']|:\s*)([^"';}>]+)`)
	attrBlackRegex  = regexp.MustCompile(`(?i)(\s(?:fill|stroke)\s*=\s*["'])\s*(?:black|#000|#000000|#000f|#000000ff|rgb\(\s*0\s*,\s*0\s*,\s*0\s*\))\s*(["'])`)
	styleBlackRegex = regexp.MustCompile(`(?i)((?:^|[\s;"'])(?:fill|stroke)\s*:\s*)(?:black|#000000ff|#000000|#000f|#000|rgb\(\s*0\s*,\s*0\s*,\s*0\s*\))`)
)

func displayText(text string) (string, bool) {
	start, end, ok := svgdoc.OpenTag(text)
	if !ok {
		return text, false
	}
	tag := text[start:end]
	var w, h string
	if m := viewBoxAttrRegex.FindStringSubmatch(tag); m != nil {
		w, h = dimensionsFromViewBox(m[1])
	} else {
		w, h = DefaultSize, DefaultSize
	}
	var extra string
	if !widthAttrRegex.MatchString(tag) {
		extra += ` width="` + w + `"`
	}
	if !heightAttrRegex.MatchString(tag) {
		extra += ` height="` + h + `"`
	}
	if extra != "" {
		text = text[:start] + tag[:4] + extra + tag[4:] + text[end:]
	}

	if !declsNeutral(text) {
		return text, true
	}
	text = attrBlackRegex.ReplaceAllString(text, "${1}"+currentColor+"${2}")
	text = styleBlackRegex.ReplaceAllString(text, "${1}"+currentColor)
	return text, true
}

func dimensionsFromViewBox(vb string) (string, string) {
	f := strings.FieldsFunc(vb, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(f) != 4 {
		return DefaultSize, DefaultSize
	}
	return f[2], f[3]
}

func normColor(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), ""))
}

func isBlack(v string) bool {
	switch normColor(v) {
	case "black", "#000", "#000000", "#000f", "#000000ff", "rgb(0,0,0)":
		return true
	}
	return false
}

// isNeutral reports whether v leaves the artwork monochrome.
func isNeutral(v string) bool {
	switch normColor(v) {
	case "none", "transparent", "currentcolor", "inherit":
		return true
	}
	return isBlack(v)
}

// stylesheetsNeutral reports whether no <style> element paints with a color.
func stylesheetsNeutral(root *etree.Element) bool {
	for _, el := range root.FindElements("//style") {
		if !declsNeutral(svgdoc.ElementText(el)) {
			return false
		}
	}
	return true
}

func declsNeutral(text string) bool {
	for _, m := range colorDeclRegex.FindAllStringSubmatch(text, -1) {
		if !isNeutral(m[1]) {
			return false
		}
	}
	return true
}

func styleIsNeutral(style string) bool {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		for _, prop := range colorProps {
			if k == prop && !isNeutral(v) {
				return false
			}
		}
	}
	return true
}

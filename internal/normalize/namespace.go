// Package normalize enforces a single, correct default namespace on svg roots.
package normalize

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/svgmotion/svgmotion/internal/svgdoc"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// EnsureNamespace guarantees the svg root declares exactly one xmlns, equal
// to the SVG namespace. Input that cannot be repaired is returned unchanged.
func EnsureNamespace(text string) string {
	return svgdoc.Transform("ensure-namespace", text, ensureStructured, ensureText)
}

func ensureStructured(_ *etree.Document, root *etree.Element) error {
	count, correct := 0, false
	for _, a := range root.Attr {
		if isDefaultNS(a) {
			count++
			correct = a.Value == model.SVGNamespace
		}
	}
	if count == 1 && correct {
		return nil
	}

	kept := root.Attr[:0]
	for _, a := range root.Attr {
		if !isDefaultNS(a) {
			kept = append(kept, a)
		}
	}
	root.Attr = kept
	root.CreateAttr("xmlns", model.SVGNamespace)

	// Keep the declaration first, where tools and humans expect it.
	last := len(root.Attr) - 1
	ns := root.Attr[last]
	copy(root.Attr[1:], root.Attr[:last])
	root.Attr[0] = ns
	return nil
}

func isDefaultNS(a etree.Attr) bool {
	return a.Space == "" && a.Key == "xmlns"
}

// One attribute of an open tag: name plus an optional double-quoted,
// single-quoted or bare value.
var attrTokenRegex = regexp.MustCompile(`^\s+([^\s=/>"']+)(?:\s*=\s*(?:"[^"]*"|'[^']*'|(?:[^\s>"'/]|/[^\s>])+))?`)

// splitAttrs walks the attributes after "<svg" in order. It returns the raw
// text of each attribute with its name, and whatever follows the last one.
func splitAttrs(attrs string) (raw, names []string, tail string) {
	for {
		m := attrTokenRegex.FindStringSubmatchIndex(attrs)
		if m == nil {
			return raw, names, attrs
		}
		raw = append(raw, attrs[:m[1]])
		names = append(names, attrs[m[2]:m[3]])
		attrs = attrs[m[1]:]
	}
}

func ensureText(text string) (string, bool) {
	start, end, ok := svgdoc.OpenTag(text)
	if !ok {
		return text, false
	}
	tag := text[start:end]
	raw, names, tail := splitAttrs(tag[4:])

	var kept strings.Builder
	count, correct := 0, false
	for i, name := range names {
		if name != "xmlns" {
			kept.WriteString(raw[i])
			continue
		}
		count++
		correct = attrValue(raw[i]) == model.SVGNamespace
	}
	if count == 1 && correct {
		return text, true
	}

	fixed := tag[:4] + ` xmlns="` + model.SVGNamespace + `"` + kept.String() + tail
	return text[:start] + fixed + text[end:], true
}

func attrValue(attr string) string {
	_, v, ok := strings.Cut(attr, "=")
	if !ok {
		return ""
	}
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

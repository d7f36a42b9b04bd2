// Package svgdoc provides the two-tier document access shared by every
// text-mutating operation: a structured XML pass with a text-pattern fallback.
package svgdoc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/svgmotion/svgmotion/pkg/logging"
	"github.com/svgmotion/svgmotion/pkg/metrics"
)

// ErrNotSVG is returned by Parse when the document root is not an svg element.
var ErrNotSVG = errors.New("root element is not svg")

// StructuredFunc mutates a parsed document in place.
type StructuredFunc func(doc *etree.Document, root *etree.Element) error

// TextFunc rewrites raw document text. It reports false when it cannot
// apply, in which case the input is returned unchanged.
type TextFunc func(text string) (string, bool)

// Parse reads text as strict XML and returns the document and its svg root.
func Parse(text string) (*etree.Document, *etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	doc.WriteSettings.CanonicalText = true
	if err := doc.ReadFromString(text); err != nil {
		return nil, nil, fmt.Errorf("parse: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, fmt.Errorf("parse: %w", ErrNotSVG)
	}
	if root.Tag != "svg" {
		return nil, nil, fmt.Errorf("parse: %w (got %q)", ErrNotSVG, root.FullTag())
	}
	return doc, root, nil
}

// Serialize writes a document back to text.
func Serialize(doc *etree.Document) (string, error) {
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return out, nil
}

// Transform runs structured over the parsed document and re-serializes it.
// On any parse, mutation or serialization failure it runs fallback over the
// original text instead. It never fails: when neither tier applies the input
// is returned as-is.
func Transform(op, text string, structured StructuredFunc, fallback TextFunc) string {
	out, err := tryStructured(text, structured)
	if err == nil {
		return out
	}

	log := logging.With(logging.Fields{"op": op})
	log.Debug("structured pass failed, using text fallback", logging.Fields{"error": err.Error()})
	metrics.Default().RecordFallback()

	if fallback != nil {
		if res, ok := fallback(text); ok {
			return res
		}
	}
	log.Debug("text fallback did not apply, returning input unchanged")
	return text
}

func tryStructured(text string, structured StructuredFunc) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("structured pass panicked: %v", r)
		}
	}()

	doc, root, err := Parse(text)
	if err != nil {
		return "", err
	}
	if err := structured(doc, root); err != nil {
		return "", err
	}
	return Serialize(doc)
}

// Inspect is the read-only counterpart of Transform.
func Inspect[T any](op, text string, structured func(root *etree.Element) (T, error), fallback func(text string) T) T {
	v, err := tryInspect(text, structured)
	if err == nil {
		return v
	}
	logging.Debug("structured inspection failed, using text fallback", logging.Fields{"op": op, "error": err.Error()})
	metrics.Default().RecordFallback()
	return fallback(text)
}

func tryInspect[T any](text string, structured func(root *etree.Element) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("structured inspection panicked: %v", r)
		}
	}()

	_, root, err := Parse(text)
	if err != nil {
		return v, err
	}
	return structured(root)
}

// ElementText concatenates every character-data child of el, CDATA included.
func ElementText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}

// HasClassPrefix reports whether any class token of el starts with prefix.
func HasClassPrefix(el *etree.Element, prefix string) bool {
	for _, c := range strings.Fields(el.SelectAttrValue("class", "")) {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// Unwrap replaces el with its children at the same position in its parent.
func Unwrap(el *etree.Element) {
	parent := el.Parent()
	if parent == nil {
		return
	}
	idx := el.Index()
	kids := append([]etree.Token(nil), el.Child...)
	parent.RemoveChildAt(idx)
	for i, tok := range kids {
		parent.InsertChildAt(idx+i, tok)
	}
}

var openSVGTagRegex = regexp.MustCompile(`(?is)<svg\b[^>]*>`)

// OpenTag locates the opening tag of the first svg element in raw text.
// It returns the [start, end) byte offsets and false when none is found.
func OpenTag(text string) (int, int, bool) {
	loc := openSVGTagRegex.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// InsertAfterOpenTag splices markup right after the root's opening tag,
// expanding a self-closing root into an open/close pair.
func InsertAfterOpenTag(text, markup string) (string, bool) {
	start, end, ok := OpenTag(text)
	if !ok {
		return text, false
	}
	tag := text[start:end]
	if strings.HasSuffix(tag, "/>") {
		open := strings.TrimRight(strings.TrimSuffix(tag, "/>"), " \t\r\n") + ">"
		return text[:start] + open + markup + "</svg>" + text[end:], true
	}
	return text[:end] + markup + text[end:], true
}

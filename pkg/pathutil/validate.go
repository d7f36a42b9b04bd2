// Package pathutil turns free-form names into safe file name components.
package pathutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/svgmotion/svgmotion/pkg/errclass"
)

// MaxNameLength bounds the sanitized name so cache file names stay short.
const MaxNameLength = 64

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeName folds name to [a-z0-9._-], replacing every other run of
// characters with a single '-'. Accents are stripped ("café" -> "cafe").
func SanitizeName(name string) (string, error) {
	folded, _, err := transform.String(foldAccents, name)
	if err != nil {
		folded = norm.NFC.String(name)
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-.")
	if len(out) > MaxNameLength {
		out = strings.TrimRight(out[:MaxNameLength], "-.")
	}
	if out == "" {
		return "", errclass.ErrNameInvalid.WithMessagef("name has no usable characters: %q", name)
	}
	return out, nil
}

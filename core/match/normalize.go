package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize reduces text to its canonical comparable form: trimmed,
// lower-cased, diacritics stripped, punctuation removed and whitespace runs
// collapsed to a single space. Every comparison in this package goes through
// Normalize, raw strings are never compared directly. Normalize is
// idempotent and maps empty input to the empty string.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	// NFD splits accented characters into base letter plus combining marks,
	// the marks are then dropped.
	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark, drop
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

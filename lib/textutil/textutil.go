package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NFD decomposition followed by removal of combining marks, so that
// "José" and "jose" normalize to the same key.
var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize produces the comparison key used by every fuzzy match in the
// repo: diacritics stripped, lower-cased, trimmed, inner runs of whitespace
// collapsed to a single space. Idempotent.
func Normalize(name string) string {
	stripped, _, err := transform.String(stripMarks, name)
	if err != nil {
		stripped = name
	}
	stripped = strings.ToLower(stripped)
	stripped = strings.TrimSpace(stripped)
	return whitespaceRegex.ReplaceAllString(stripped, " ")
}

// IsArabic reports whether any rune falls in the Arabic block
// U+0600..U+06FF.
func IsArabic(text string) bool {
	for _, c := range text {
		if c >= 0x0600 && c <= 0x06FF {
			return true
		}
	}
	return false
}

// FirstToken returns the part of s before the first space, or "" if s
// contains no space.
func FirstToken(s string) string {
	idx := strings.IndexByte(s, ' ')
	if idx < 0 {
		return ""
	}
	return s[:idx]
}

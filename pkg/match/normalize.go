package match

import (
	"regexp"
	"strings"
)

// Characters allowed to survive normalization: word characters, whitespace,
// CJK ideographs and basic sentence punctuation (full-width and ASCII).
var disallowedRE = regexp.MustCompile(`[^\w\s\x{4e00}-\x{9fff}？！。，、：；?!.,:;]`)

// Normalize canonicalizes raw OCR text for comparison: ASCII letters fold to
// lowercase, characters outside the whitelist are stripped, whitespace runs
// collapse to a single space. CJK characters pass through untouched.
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	stripped := disallowedRE.ReplaceAllString(b.String(), "")
	return strings.Join(strings.Fields(stripped), " ")
}

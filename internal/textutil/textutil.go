// Package textutil provides the text normalisation and keyword extraction
// primitives shared by every classifier in the monitor service.
package textutil

import (
	"regexp"
	"strings"
)

var (
	nonWordRE    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces every character outside word
// characters and whitespace with a space, collapses runs of whitespace and
// trims. It is pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = nonWordRE.ReplaceAllString(s, " ")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ExtractKeywords normalises text once and returns every keyword from the
// given ordered set that appears as a substring. Result order follows the
// declaration order of keywords — ties and ordering are deterministic
// because keyword tables are slices, never maps.
//
// Matching is exact substring containment over the normalised text, so
// multi-word keywords must already be in normalised form.
func ExtractKeywords(text string, keywords []string) []string {
	if text == "" || len(keywords) == 0 {
		return nil
	}
	norm := Normalize(text)
	var matched []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(norm, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// ContainsAny reports whether any keyword from the ordered set appears in
// the normalised text.
func ContainsAny(text string, keywords []string) bool {
	return len(ExtractKeywords(text, keywords)) > 0
}

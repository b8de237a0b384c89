package search

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuestion composes Hangul to NFC and collapses runs of whitespace
// so pattern tables see precomposed syllables and single spaces.
func NormalizeQuestion(text string) string {
	return strings.Join(strings.Fields(norm.NFC.String(text)), " ")
}

// isBlank reports whether text holds nothing but whitespace.
func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalize case-folds s and drops every whitespace rune, so "Pinot  Noir"
// and "pinotnoir" compare equal.
func Normalize(s string) string {
	folded := cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// words splits s on whitespace runs and case-folds each word. Whitespace is
// not collapsed across words here.
func words(s string) []string {
	fields := strings.Fields(s)
	caser := cases.Fold()
	for i, f := range fields {
		fields[i] = caser.String(f)
	}
	return fields
}

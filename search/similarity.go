package search

import (
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Distance is the Levenshtein edit distance between a and b, counted in runes
// with unit cost for insert, delete and substitute.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}

// Similarity maps the edit distance onto [0, 1]:
// 1 - distance / max(len(a), len(b)). Two empty strings are identical.
func Similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}

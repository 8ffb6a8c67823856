package search

import (
	"strings"

	"wine-explorer/models"
)

// DefaultThreshold is the minimum similarity accepted as a fuzzy hit.
const DefaultThreshold = 0.7

// Matcher performs approximate text matching with a fixed threshold.
type Matcher struct {
	threshold float64
}

// NewMatcher returns a Matcher; a non-positive threshold falls back to
// DefaultThreshold.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Matches reports whether query approximately matches candidate at DefaultThreshold.
func Matches(query, candidate string) bool {
	return MatchesWithThreshold(query, candidate, DefaultThreshold)
}

// MatchesWithThreshold tries, in order:
//  1. normalized candidate contains normalized query
//  2. every query word is satisfied by some candidate word, either by
//     substring containment in either direction or by similarity >= threshold
//  3. similarity of the whole normalized strings >= threshold
func MatchesWithThreshold(query, candidate string, threshold float64) bool {
	normalizedQuery := Normalize(query)
	normalizedCandidate := Normalize(candidate)

	if strings.Contains(normalizedCandidate, normalizedQuery) {
		return true
	}

	if everyWordSatisfied(words(query), words(candidate), threshold) {
		return true
	}

	return Similarity(normalizedQuery, normalizedCandidate) >= threshold
}

func everyWordSatisfied(queryWords, candidateWords []string, threshold float64) bool {
	if len(queryWords) == 0 {
		return false
	}
	for _, qw := range queryWords {
		if !wordSatisfied(qw, candidateWords, threshold) {
			return false
		}
	}
	return true
}

func wordSatisfied(queryWord string, candidateWords []string, threshold float64) bool {
	for _, cw := range candidateWords {
		if strings.Contains(cw, queryWord) || strings.Contains(queryWord, cw) {
			return true
		}
		if Similarity(Normalize(queryWord), Normalize(cw)) >= threshold {
			return true
		}
	}
	return false
}

// Matches reports whether query matches candidate at the matcher's threshold.
func (m *Matcher) Matches(query, candidate string) bool {
	return MatchesWithThreshold(query, candidate, m.threshold)
}

// MatchesWine reports whether query matches the wine's name, country,
// subregion, grape/style, wine type, or any single aroma.
func (m *Matcher) MatchesWine(query string, wine *models.Wine) bool {
	fields := []string{wine.WineName, wine.Country, wine.Subregion, wine.GrapeOrStyle, wine.WineType}
	for _, f := range fields {
		if m.Matches(query, f) {
			return true
		}
	}
	for _, aroma := range wine.Aromas {
		if m.Matches(query, aroma) {
			return true
		}
	}
	return false
}

// FilterWines returns the wines matching query, in input order. A blank
// query matches nothing.
func (m *Matcher) FilterWines(wines []models.Wine, query string) []models.Wine {
	if strings.TrimSpace(query) == "" {
		return []models.Wine{}
	}
	out := make([]models.Wine, 0)
	for i := range wines {
		if m.MatchesWine(query, &wines[i]) {
			out = append(out, wines[i])
		}
	}
	return out
}

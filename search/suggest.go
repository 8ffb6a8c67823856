package search

import (
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"wine-explorer/models"
)

// SuggestOptions narrows a filter-option list to the entries matching a typed
// pattern, best match first. A blank pattern returns every option unchanged.
// limit <= 0 means no limit.
func SuggestOptions(pattern string, options []string, limit int) []string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return truncate(slices.Clone(options), limit)
	}

	matches := fuzzy.Find(pattern, options)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return truncate(out, limit)
}

// SuggestFilterOptions narrows every list of options, vintages included, to
// the entries matching pattern. A nil catalog yields an empty one.
func SuggestFilterOptions(pattern string, options *models.FilterOptions, limit int) *models.FilterOptions {
	if options == nil {
		return &models.FilterOptions{
			WineType:     []string{},
			Country:      []string{},
			Vintage:      []int{},
			GrapeOrStyle: []string{},
		}
	}
	vintages := make([]string, len(options.Vintage))
	for i, v := range options.Vintage {
		vintages[i] = strconv.Itoa(v)
	}
	matchedVintages := SuggestOptions(pattern, vintages, limit)
	years := make([]int, 0, len(matchedVintages))
	for _, v := range matchedVintages {
		n, _ := strconv.Atoi(v)
		years = append(years, n)
	}

	return &models.FilterOptions{
		WineType:     SuggestOptions(pattern, options.WineType, limit),
		Country:      SuggestOptions(pattern, options.Country, limit),
		Vintage:      years,
		GrapeOrStyle: SuggestOptions(pattern, options.GrapeOrStyle, limit),
	}
}

func truncate(ss []string, limit int) []string {
	if limit > 0 && len(ss) > limit {
		return ss[:limit]
	}
	return ss
}

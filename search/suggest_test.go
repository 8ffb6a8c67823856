package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wine-explorer/models"
)

func TestSuggestOptions(t *testing.T) {
	options := []string{"Italy", "France", "Spain", "South Africa"}

	got := SuggestOptions("fra", options, 0)
	require.Len(t, got, 2)
	assert.Equal(t, "France", got[0])
	assert.Contains(t, got, "South Africa")
	assert.Equal(t, []string{"France"}, SuggestOptions("fra", options, 1))
	assert.Equal(t, options, SuggestOptions("  ", options, 0))
	assert.Len(t, SuggestOptions("", options, 2), 2)
	assert.Empty(t, SuggestOptions("xyz", options, 0))
}

func TestSuggestFilterOptions(t *testing.T) {
	options := &models.FilterOptions{
		WineType:     []string{"Red", "White", "Rose"},
		Country:      []string{"France", "Italy"},
		Vintage:      []int{2015, 2018, 2020},
		GrapeOrStyle: []string{"Merlot", "Riesling"},
	}

	got := SuggestFilterOptions("201", options, 0)
	assert.Empty(t, got.WineType)
	assert.Empty(t, got.Country)
	assert.ElementsMatch(t, []int{2015, 2018}, got.Vintage)

	got = SuggestFilterOptions("it", options, 0)
	assert.Equal(t, []string{"Italy"}, got.Country)
	assert.Contains(t, got.WineType, "White")
	assert.Len(t, options.Country, 2)
}

func TestSuggestFilterOptions_NilCatalog(t *testing.T) {
	got := SuggestFilterOptions("fra", nil, 0)
	require.NotNil(t, got)
	assert.Empty(t, got.WineType)
	assert.Empty(t, got.Country)
	assert.Empty(t, got.Vintage)
	assert.Empty(t, got.GrapeOrStyle)
}

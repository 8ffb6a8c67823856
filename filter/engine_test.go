package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wine-explorer/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func catalog() []models.Wine {
	return []models.Wine{
		{WineName: "Margaux", Country: "France", Subregion: "Bordeaux", WineType: "Red", GrapeOrStyle: "Cabernet Sauvignon",
			Vintage: intPtr(2015), Tannin: floatPtr(4), Sweetness: floatPtr(1), Acidity: floatPtr(3), Body: floatPtr(5), Alcohol: floatPtr(13.5),
			Aromas: []string{"blackcurrant", "cedar"}, PriceKRW: intPtr(850000)},
		{WineName: "Chablis", Country: "France", Subregion: "Burgundy", WineType: "White", GrapeOrStyle: "Chardonnay",
			Vintage: intPtr(2020), Tannin: floatPtr(1), Sweetness: floatPtr(1), Acidity: floatPtr(5), Body: floatPtr(2), Alcohol: floatPtr(12.5),
			Aromas: []string{"lemon", "flint"}, PriceKRW: intPtr(45000)},
		{WineName: "Tignanello", Country: "Italy", Subregion: "Tuscany", WineType: "Red", GrapeOrStyle: "Sangiovese",
			Vintage: intPtr(2018), Tannin: floatPtr(4), Sweetness: floatPtr(1), Acidity: floatPtr(4), Body: floatPtr(4), Alcohol: floatPtr(14),
			Aromas: []string{"cherry", "tobacco"}, PriceKRW: intPtr(230000)},
		{WineName: "Mystery Blend", Country: "Spain", Subregion: "Rioja", WineType: "Red", GrapeOrStyle: "Tempranillo"},
		{WineName: "Cross Border", Country: "Spain", Subregion: "Pyrenees", WineType: "Rosé", GrapeOrStyle: "Garnacha",
			Vintage: intPtr(2021), Tannin: floatPtr(2), Alcohol: floatPtr(12), Aromas: []string{"strawberry"}, PriceKRW: intPtr(30000)},
		{WineName: "Other Side", Country: "France", Subregion: "Pyrenees", WineType: "Rosé", GrapeOrStyle: "Grenache",
			Vintage: intPtr(2021), Tannin: floatPtr(2), Alcohol: floatPtr(12.5), Aromas: []string{"raspberry"}, PriceKRW: intPtr(32000)},
	}
}

func names(wines []models.Wine) []string {
	out := make([]string, len(wines))
	for k, w := range wines {
		out[k] = w.WineName
	}
	return out
}

func TestApply_DefaultSpecIsIdentity(t *testing.T) {
	wines := catalog()
	assert.Equal(t, wines, Apply(wines, models.DefaultFilterSpec()))
}

func TestApply_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		edit func(*models.FilterSpec)
		want []string
	}{
		{"wine type", func(s *models.FilterSpec) { s.WineTypes = []string{"White"} }, []string{"Chablis"}},
		{"country", func(s *models.FilterSpec) { s.Countries = []string{"Italy"} }, []string{"Tignanello"}},
		{"vintage excludes absent", func(s *models.FilterSpec) { s.Vintages = []int{2015, 2018} }, []string{"Margaux", "Tignanello"}},
		{"grape", func(s *models.FilterSpec) { s.GrapeVarieties = []string{"Tempranillo"} }, []string{"Mystery Blend"}},
		{"aroma intersects", func(s *models.FilterSpec) { s.Aromas = []string{"flint", "cherry"} }, []string{"Chablis", "Tignanello"}},
		{"price narrowed", func(s *models.FilterSpec) { s.PriceRange = models.Range{Min: 40000, Max: 300000} }, []string{"Chablis", "Tignanello"}},
		{"price inclusive bounds", func(s *models.FilterSpec) { s.PriceRange = models.Range{Min: 45000, Max: 230000} }, []string{"Chablis", "Tignanello"}},
		{"tannin narrowed", func(s *models.FilterSpec) { s.TanninRange = models.Range{Min: 4, Max: 5} }, []string{"Margaux", "Tignanello"}},
		{"acidity narrowed", func(s *models.FilterSpec) { s.AcidityRange = models.Range{Min: 5, Max: 5} }, []string{"Chablis"}},
		{"body narrowed", func(s *models.FilterSpec) { s.BodyRange = models.Range{Min: 0, Max: 2} }, []string{"Chablis"}},
		{"sweetness narrowed drops absent", func(s *models.FilterSpec) { s.SweetnessRange = models.Range{Min: 0, Max: 4} }, []string{"Margaux", "Chablis", "Tignanello"}},
		{"alcohol narrowed", func(s *models.FilterSpec) { s.AlcoholRange = models.Range{Min: 13, Max: 25} }, []string{"Margaux", "Tignanello"}},
		{"conjunction", func(s *models.FilterSpec) {
			s.WineTypes = []string{"Red"}
			s.Countries = []string{"France", "Italy"}
			s.PriceRange = models.Range{Min: 0, Max: 500000}
		}, []string{"Tignanello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := models.DefaultFilterSpec()
			tt.edit(&spec)
			assert.Equal(t, tt.want, names(Apply(catalog(), spec)))
		})
	}
}

func TestApply_AbsentValuesPassDefaultRanges(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.WineTypes = []string{"Red"}

	got := names(Apply(catalog(), spec))
	assert.Contains(t, got, "Mystery Blend")
}

func TestApply_EmptySetIsNoRestriction(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Countries = []string{}
	spec.Aromas = []string{}

	assert.Len(t, Apply(catalog(), spec), len(catalog()))
}

func TestApply_Idempotent(t *testing.T) {
	specs := []models.FilterSpec{models.DefaultFilterSpec()}

	s := models.DefaultFilterSpec()
	s.Countries = []string{"France"}
	s.Subregions = []string{"Bordeaux", "Tuscany"}
	specs = append(specs, s)

	s = models.DefaultFilterSpec()
	s.WineTypes = []string{"Rosé"}
	s.AlcoholRange = models.Range{Min: 12, Max: 12.5}
	s.Subregions = []string{"Pyrenees"}
	specs = append(specs, s)

	for _, spec := range specs {
		once := Apply(catalog(), spec)
		assert.Equal(t, once, Apply(once, spec))
	}
}

func TestApply_SubregionOnlyRestrictsWithinSelectedCountries(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Countries = []string{"France", "Italy"}
	spec.Subregions = []string{"Bordeaux"}

	// Italy has no selected subregion of its own, yet Bordeaux narrows
	// every selected record to Bordeaux.
	assert.Equal(t, []string{"Margaux"}, names(Apply(catalog(), spec)))

	// A subregion outside every selected country is ignored.
	spec.Countries = []string{"Italy"}
	spec.Subregions = []string{"Bordeaux"}
	assert.Equal(t, []string{"Tignanello"}, names(Apply(catalog(), spec)))
}

func TestApply_SubregionWithoutCountry(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Subregions = []string{"Pyrenees"}

	assert.Equal(t, []string{"Cross Border", "Other Side"}, names(Apply(catalog(), spec)))
}

func TestMatches_SingleRecord(t *testing.T) {
	wines := catalog()
	idx := BuildSubregionIndex(wines)

	spec := models.DefaultFilterSpec()
	spec.Countries = []string{"France"}
	spec.Subregions = []string{"Burgundy"}

	require.True(t, Matches(&wines[1], spec, idx))
	assert.False(t, Matches(&wines[0], spec, idx))
	assert.False(t, Matches(&wines[2], spec, idx))
}

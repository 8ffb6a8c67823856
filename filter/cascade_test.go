package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wine-explorer/models"
)

func TestBuildSubregionIndex(t *testing.T) {
	idx := BuildSubregionIndex(append(catalog(), models.Wine{WineName: "No Region", Country: "Chile"}))

	assert.True(t, idx.Belongs("France", "Pyrenees"))
	assert.True(t, idx.Belongs("Spain", "Pyrenees"))
	assert.False(t, idx.Belongs("Italy", "Bordeaux"))
	assert.NotContains(t, idx, "Chile")
}

func TestToggleCountry_DeselectRemovesExclusiveSubregions(t *testing.T) {
	idx := BuildSubregionIndex(catalog())

	spec := models.DefaultFilterSpec()
	spec = ToggleCountry(spec, "France", idx)
	spec = ToggleCountry(spec, "Spain", idx)
	spec = ToggleSubregion(spec, "Bordeaux")
	spec = ToggleSubregion(spec, "Pyrenees")
	spec = ToggleSubregion(spec, "Rioja")

	next := ToggleCountry(spec, "France", idx)

	assert.Equal(t, []string{"Spain"}, next.Countries)
	assert.Equal(t, []string{"Pyrenees", "Rioja"}, next.Subregions, "shared subregion is retained")

	// The input value is untouched.
	assert.Equal(t, []string{"France", "Spain"}, spec.Countries)
	assert.Equal(t, []string{"Bordeaux", "Pyrenees", "Rioja"}, spec.Subregions)
}

func TestToggleCountry_DeselectLastCountry(t *testing.T) {
	idx := BuildSubregionIndex(catalog())

	spec := models.DefaultFilterSpec()
	spec.Countries = []string{"France"}
	spec.Subregions = []string{"Bordeaux", "Pyrenees", "Tuscany"}

	next := ToggleCountry(spec, "France", idx)

	assert.Empty(t, next.Countries)
	assert.Equal(t, []string{"Tuscany"}, next.Subregions)
}

func TestToggleCountry_Select(t *testing.T) {
	spec := ToggleCountry(models.DefaultFilterSpec(), "Italy", nil)
	assert.Equal(t, []string{"Italy"}, spec.Countries)
}

func TestToggles(t *testing.T) {
	spec := models.DefaultFilterSpec()

	spec = ToggleWineType(spec, "Red")
	spec = ToggleVintage(spec, 2015)
	spec = ToggleGrape(spec, "Merlot")
	spec = ToggleAroma(spec, "cedar")
	assert.Equal(t, []string{"Red"}, spec.WineTypes)
	assert.Equal(t, []int{2015}, spec.Vintages)
	assert.Equal(t, []string{"Merlot"}, spec.GrapeVarieties)
	assert.Equal(t, []string{"cedar"}, spec.Aromas)

	spec = ToggleWineType(spec, "Red")
	spec = ToggleVintage(spec, 2015)
	spec = ToggleGrape(spec, "Merlot")
	spec = ToggleAroma(spec, "cedar")
	assert.True(t, spec.IsDefault())
}

func TestSubregionOptions(t *testing.T) {
	idx := BuildSubregionIndex(catalog())

	assert.Equal(t, []string{"Bordeaux", "Burgundy", "Pyrenees", "Rioja", "Tuscany"}, SubregionOptions(idx, nil))
	assert.Equal(t, []string{"Pyrenees", "Rioja"}, SubregionOptions(idx, []string{"Spain"}))
	assert.Equal(t, []string{"Bordeaux", "Burgundy", "Pyrenees", "Tuscany"}, SubregionOptions(idx, []string{"France", "Italy"}))
	assert.Empty(t, SubregionOptions(idx, []string{"Chile"}))
}

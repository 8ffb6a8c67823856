package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wine-explorer/models"
)

func TestToRequest_DefaultSpecIsSparse(t *testing.T) {
	body, err := json.Marshal(ToRequest(models.DefaultFilterSpec(), 1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":1}`, string(body))
}

func TestToRequest_IncludesOnlyChangedFields(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.PriceRange = models.Range{Min: 10000, Max: 1_000_000}
	spec.TanninRange = models.Range{Min: 2, Max: 4}
	spec.AlcoholRange = models.Range{Min: 0, Max: 5}
	spec.Countries = []string{"France"}
	spec.Vintages = []int{2019}
	spec.Subregions = []string{"Bordeaux"}
	spec.Aromas = []string{"cedar"}

	body, err := json.Marshal(ToRequest(spec, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"page": 3,
		"price_krw_min": 10000, "price_krw_max": 1000000,
		"tannin_min": 2, "tannin_max": 4,
		"alcohol_min": 0, "alcohol_max": 5,
		"country": ["France"],
		"vintage": [2019]
	}`, string(body))
}

func TestToRequest_AlcoholUsesItsOwnDefault(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.AlcoholRange = models.Range{Min: 0, Max: 25}

	req := ToRequest(spec, 1)
	assert.Nil(t, req.AlcoholMin)
	assert.Nil(t, req.AlcoholMax)
}

func TestFromRequest_RoundTrip(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.PriceRange = models.Range{Min: 0, Max: 50000}
	spec.SweetnessRange = models.Range{Min: 3, Max: 5}
	spec.AcidityRange = models.Range{Min: 1, Max: 1}
	spec.BodyRange = models.Range{Min: 2, Max: 3}
	spec.WineTypes = []string{"Red", "White"}
	spec.GrapeVarieties = []string{"Merlot"}
	spec.Vintages = []int{2010, 2011}

	assert.Equal(t, spec, FromRequest(ToRequest(spec, 1)))
}

func TestFromRequest_DropsLocalOnlyDimensions(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Subregions = []string{"Bordeaux"}
	spec.Aromas = []string{"cedar"}

	assert.True(t, FromRequest(ToRequest(spec, 1)).IsDefault())
}

package filter

import (
	"slices"

	"wine-explorer/models"
)

// ToRequest builds the sparse /wines/filter body for spec. A range is sent
// (both bounds) only when it differs from its default; a set only when
// non-empty. Subregion and aroma are never sent since the server cannot
// filter on them.
func ToRequest(spec models.FilterSpec, page int) models.FilterRequest {
	req := models.FilterRequest{Page: page}

	req.PriceKRWMin, req.PriceKRWMax = bounds(spec.PriceRange, models.DefaultPriceRange)
	req.TanninMin, req.TanninMax = bounds(spec.TanninRange, models.DefaultTasteRange)
	req.SweetnessMin, req.SweetnessMax = bounds(spec.SweetnessRange, models.DefaultTasteRange)
	req.AcidityMin, req.AcidityMax = bounds(spec.AcidityRange, models.DefaultTasteRange)
	req.BodyMin, req.BodyMax = bounds(spec.BodyRange, models.DefaultTasteRange)
	req.AlcoholMin, req.AlcoholMax = bounds(spec.AlcoholRange, models.DefaultAlcoholRange)

	req.WineType = nonEmpty(spec.WineTypes)
	req.Country = nonEmpty(spec.Countries)
	req.Vintage = nonEmpty(spec.Vintages)
	req.GrapeOrStyle = nonEmpty(spec.GrapeVarieties)

	return req
}

// FromRequest decodes a request back into a spec. Omitted fields take their
// defaults, so FromRequest(ToRequest(s, p)) reproduces every server-side
// dimension of s.
func FromRequest(req models.FilterRequest) models.FilterSpec {
	spec := models.DefaultFilterSpec()

	spec.PriceRange = fromBounds(req.PriceKRWMin, req.PriceKRWMax, models.DefaultPriceRange)
	spec.TanninRange = fromBounds(req.TanninMin, req.TanninMax, models.DefaultTasteRange)
	spec.SweetnessRange = fromBounds(req.SweetnessMin, req.SweetnessMax, models.DefaultTasteRange)
	spec.AcidityRange = fromBounds(req.AcidityMin, req.AcidityMax, models.DefaultTasteRange)
	spec.BodyRange = fromBounds(req.BodyMin, req.BodyMax, models.DefaultTasteRange)
	spec.AlcoholRange = fromBounds(req.AlcoholMin, req.AlcoholMax, models.DefaultAlcoholRange)

	spec.WineTypes = slices.Clone(req.WineType)
	spec.Countries = slices.Clone(req.Country)
	spec.Vintages = slices.Clone(req.Vintage)
	spec.GrapeVarieties = slices.Clone(req.GrapeOrStyle)

	return spec
}

func bounds(r, def models.Range) (*float64, *float64) {
	if r == def {
		return nil, nil
	}
	lo, hi := r.Min, r.Max
	return &lo, &hi
}

func fromBounds(lo, hi *float64, def models.Range) models.Range {
	r := def
	if lo != nil {
		r.Min = *lo
	}
	if hi != nil {
		r.Max = *hi
	}
	return r
}

func nonEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

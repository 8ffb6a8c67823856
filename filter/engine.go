package filter

import (
	"slices"

	"wine-explorer/models"
)

// Apply returns the records that satisfy every dimension of spec, in input
// order. The subregion cascade is resolved against an index built from
// records themselves.
func Apply(records []models.Wine, spec models.FilterSpec) []models.Wine {
	return ApplyWithIndex(records, spec, BuildSubregionIndex(records))
}

// ApplyWithIndex is Apply with a caller-supplied country/subregion index,
// typically one built once from the full catalog.
func ApplyWithIndex(records []models.Wine, spec models.FilterSpec, index SubregionIndex) []models.Wine {
	p := newPredicate(spec, index)
	out := make([]models.Wine, 0, len(records))
	for i := range records {
		if p.matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// Matches evaluates a single record. Subregion membership comes from index;
// a nil index treats no subregion as belonging to any selected country.
func Matches(wine *models.Wine, spec models.FilterSpec, index SubregionIndex) bool {
	return newPredicate(spec, index).matches(wine)
}

type predicate struct {
	spec       models.FilterSpec
	subregions []string
}

func newPredicate(spec models.FilterSpec, index SubregionIndex) predicate {
	return predicate{
		spec:       spec,
		subregions: effectiveSubregions(spec, index),
	}
}

// effectiveSubregions narrows the subregion selection to the subregions of
// the selected countries. With no country selected the selection is taken
// as is.
func effectiveSubregions(spec models.FilterSpec, index SubregionIndex) []string {
	if len(spec.Subregions) == 0 || len(spec.Countries) == 0 {
		return spec.Subregions
	}
	out := make([]string, 0, len(spec.Subregions))
	for _, s := range spec.Subregions {
		if index.BelongsToAny(s, spec.Countries) {
			out = append(out, s)
		}
	}
	return out
}

func (p predicate) matches(w *models.Wine) bool {
	s := p.spec

	if !inPriceRange(w.PriceKRW, s.PriceRange) ||
		!inRange(w.Tannin, s.TanninRange, models.DefaultTasteRange) ||
		!inRange(w.Sweetness, s.SweetnessRange, models.DefaultTasteRange) ||
		!inRange(w.Acidity, s.AcidityRange, models.DefaultTasteRange) ||
		!inRange(w.Body, s.BodyRange, models.DefaultTasteRange) ||
		!inRange(w.Alcohol, s.AlcoholRange, models.DefaultAlcoholRange) {
		return false
	}

	if !accepts(s.WineTypes, w.WineType) ||
		!accepts(s.Countries, w.Country) ||
		!accepts(p.subregions, w.Subregion) ||
		!accepts(s.GrapeVarieties, w.GrapeOrStyle) {
		return false
	}

	if len(s.Vintages) > 0 && (w.Vintage == nil || !slices.Contains(s.Vintages, *w.Vintage)) {
		return false
	}

	if len(s.Aromas) > 0 && !slices.ContainsFunc(s.Aromas, w.HasAroma) {
		return false
	}

	return true
}

// inRange passes everything while r is still the full-domain default, absent
// values included. A narrowed range requires a present value inside it.
func inRange(v *float64, r, def models.Range) bool {
	if r == def {
		return true
	}
	return v != nil && r.Contains(*v)
}

func inPriceRange(v *int, r models.Range) bool {
	if r == models.DefaultPriceRange {
		return true
	}
	return v != nil && r.Contains(float64(*v))
}

func accepts(set []string, v string) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

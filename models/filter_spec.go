package models

import (
	"fmt"
	"slices"
)

// Full-domain defaults for every range dimension.
var (
	DefaultPriceRange   = Range{Min: 0, Max: 1_000_000}
	DefaultTasteRange   = Range{Min: 0, Max: 5}
	DefaultAlcoholRange = Range{Min: 0, Max: 25}
)

// Range is a closed, inclusive numeric interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Validate rejects an inverted range.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// FilterSpec is the full set of user-chosen constraints. An empty value set
// means the dimension is unrestricted.
type FilterSpec struct {
	PriceRange     Range    `json:"price_range" yaml:"price_range"`
	WineTypes      []string `json:"wine_types" yaml:"wine_types"`
	Countries      []string `json:"countries" yaml:"countries"`
	Subregions     []string `json:"subregions" yaml:"subregions"`
	Vintages       []int    `json:"vintages" yaml:"vintages"`
	GrapeVarieties []string `json:"grape_varieties" yaml:"grape_varieties"`
	Aromas         []string `json:"aromas" yaml:"aromas"`
	TanninRange    Range    `json:"tannin_range" yaml:"tannin_range"`
	SweetnessRange Range    `json:"sweetness_range" yaml:"sweetness_range"`
	AcidityRange   Range    `json:"acidity_range" yaml:"acidity_range"`
	BodyRange      Range    `json:"body_range" yaml:"body_range"`
	AlcoholRange   Range    `json:"alcohol_range" yaml:"alcohol_range"`
}

// DefaultFilterSpec returns the session-start spec: every range at its full
// domain and every value set empty.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		PriceRange:     DefaultPriceRange,
		TanninRange:    DefaultTasteRange,
		SweetnessRange: DefaultTasteRange,
		AcidityRange:   DefaultTasteRange,
		BodyRange:      DefaultTasteRange,
		AlcoholRange:   DefaultAlcoholRange,
	}
}

// Validate checks min <= max on every range.
func (s FilterSpec) Validate() error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"price", s.PriceRange},
		{"tannin", s.TanninRange},
		{"sweetness", s.SweetnessRange},
		{"acidity", s.AcidityRange},
		{"body", s.BodyRange},
		{"alcohol", s.AlcoholRange},
	}
	for _, rg := range ranges {
		if err := rg.r.Validate(); err != nil {
			return fmt.Errorf("%s range: %w", rg.name, err)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can build the next value without
// touching the current one.
func (s FilterSpec) Clone() FilterSpec {
	out := s
	out.WineTypes = slices.Clone(s.WineTypes)
	out.Countries = slices.Clone(s.Countries)
	out.Subregions = slices.Clone(s.Subregions)
	out.Vintages = slices.Clone(s.Vintages)
	out.GrapeVarieties = slices.Clone(s.GrapeVarieties)
	out.Aromas = slices.Clone(s.Aromas)
	return out
}

// IsDefault reports whether s restricts nothing.
func (s FilterSpec) IsDefault() bool {
	return s.PriceRange == DefaultPriceRange &&
		s.TanninRange == DefaultTasteRange &&
		s.SweetnessRange == DefaultTasteRange &&
		s.AcidityRange == DefaultTasteRange &&
		s.BodyRange == DefaultTasteRange &&
		s.AlcoholRange == DefaultAlcoholRange &&
		len(s.WineTypes) == 0 &&
		len(s.Countries) == 0 &&
		len(s.Subregions) == 0 &&
		len(s.Vintages) == 0 &&
		len(s.GrapeVarieties) == 0 &&
		len(s.Aromas) == 0
}

package filter

import (
	"slices"
	"sort"

	"wine-explorer/models"
)

// SubregionIndex maps a country to the set of subregions seen under it.
type SubregionIndex map[string]map[string]struct{}

// BuildSubregionIndex collects country/subregion pairs from wines. Records
// with an empty country or subregion are skipped.
func BuildSubregionIndex(wines []models.Wine) SubregionIndex {
	idx := make(SubregionIndex)
	for i := range wines {
		idx.Add(wines[i].Country, wines[i].Subregion)
	}
	return idx
}

func (idx SubregionIndex) Add(country, subregion string) {
	if country == "" || subregion == "" {
		return
	}
	subs, ok := idx[country]
	if !ok {
		subs = make(map[string]struct{})
		idx[country] = subs
	}
	subs[subregion] = struct{}{}
}

// Belongs reports whether subregion was seen under country.
func (idx SubregionIndex) Belongs(country, subregion string) bool {
	_, ok := idx[country][subregion]
	return ok
}

// BelongsToAny reports whether subregion was seen under any of countries.
func (idx SubregionIndex) BelongsToAny(subregion string, countries []string) bool {
	for _, c := range countries {
		if idx.Belongs(c, subregion) {
			return true
		}
	}
	return false
}

// SubregionOptions lists the subregions a user may pick: every known
// subregion when no country is selected, otherwise only those of the
// selected countries. The result is sorted and de-duplicated.
func SubregionOptions(idx SubregionIndex, countries []string) []string {
	seen := make(map[string]struct{})
	collect := func(country string) {
		for s := range idx[country] {
			seen[s] = struct{}{}
		}
	}
	if len(countries) == 0 {
		for c := range idx {
			collect(c)
		}
	} else {
		for _, c := range countries {
			collect(c)
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ToggleCountry flips country in the selection and returns the new spec.
// Deselecting a country also drops every selected subregion that belongs to
// it and to no country that is still selected.
func ToggleCountry(spec models.FilterSpec, country string, idx SubregionIndex) models.FilterSpec {
	next := spec.Clone()
	if !slices.Contains(next.Countries, country) {
		next.Countries = append(next.Countries, country)
		return next
	}

	next.Countries = remove(next.Countries, country)
	next.Subregions = slices.DeleteFunc(next.Subregions, func(s string) bool {
		return idx.Belongs(country, s) && !idx.BelongsToAny(s, next.Countries)
	})
	return next
}

func ToggleSubregion(spec models.FilterSpec, subregion string) models.FilterSpec {
	next := spec.Clone()
	next.Subregions = toggle(next.Subregions, subregion)
	return next
}

func ToggleWineType(spec models.FilterSpec, wineType string) models.FilterSpec {
	next := spec.Clone()
	next.WineTypes = toggle(next.WineTypes, wineType)
	return next
}

func ToggleVintage(spec models.FilterSpec, vintage int) models.FilterSpec {
	next := spec.Clone()
	next.Vintages = toggle(next.Vintages, vintage)
	return next
}

func ToggleGrape(spec models.FilterSpec, grape string) models.FilterSpec {
	next := spec.Clone()
	next.GrapeVarieties = toggle(next.GrapeVarieties, grape)
	return next
}

func ToggleAroma(spec models.FilterSpec, aroma string) models.FilterSpec {
	next := spec.Clone()
	next.Aromas = toggle(next.Aromas, aroma)
	return next
}

func toggle[T comparable](set []T, v T) []T {
	if slices.Contains(set, v) {
		return remove(set, v)
	}
	return append(set, v)
}

func remove[T comparable](set []T, v T) []T {
	return slices.DeleteFunc(set, func(x T) bool { return x == v })
}

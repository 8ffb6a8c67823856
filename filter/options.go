package filter

import (
	"sort"

	"wine-explorer/models"
)

// AvailableOptionsFrom derives sorted, de-duplicated option lists from a
// catalog. Empty strings and absent vintages are left out.
func AvailableOptionsFrom(wines []models.Wine) models.AvailableOptions {
	types := newStringSet()
	countries := newStringSet()
	subregions := newStringSet()
	grapes := newStringSet()
	aromas := newStringSet()
	vintages := make(map[int]struct{})

	for i := range wines {
		w := &wines[i]
		types.add(w.WineType)
		countries.add(w.Country)
		subregions.add(w.Subregion)
		grapes.add(w.GrapeOrStyle)
		for _, a := range w.Aromas {
			aromas.add(a)
		}
		if w.Vintage != nil {
			vintages[*w.Vintage] = struct{}{}
		}
	}

	years := make([]int, 0, len(vintages))
	for v := range vintages {
		years = append(years, v)
	}
	sort.Ints(years)

	return models.AvailableOptions{
		WineTypes:      types.sorted(),
		Countries:      countries.sorted(),
		Subregions:     subregions.sorted(),
		Vintages:       years,
		GrapeVarieties: grapes.sorted(),
		Aromas:         aromas.sorted(),
	}
}

type stringSet map[string]struct{}

func newStringSet() stringSet { return make(stringSet) }

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

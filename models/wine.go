package models

import "fmt"

// Wine is one catalog row as served by the wines API.
// Absent numeric values decode as nil.
type Wine struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	WineName     string   `json:"wine_name" yaml:"wine_name"`
	Country      string   `json:"country" yaml:"country"`
	Subregion    string   `json:"subregion" yaml:"subregion"`
	Vintage      *int     `json:"vintage" yaml:"vintage" validate:"omitempty,gte=0"`
	WineType     string   `json:"wine_type" yaml:"wine_type"`
	GrapeOrStyle string   `json:"grape_or_style" yaml:"grape_or_style"`
	Alcohol      *float64 `json:"alcohol" yaml:"alcohol" validate:"omitempty,gte=0"`
	Tannin       *float64 `json:"tannin" yaml:"tannin" validate:"omitempty,gte=0"`
	Sweetness    *float64 `json:"sweetness" yaml:"sweetness" validate:"omitempty,gte=0"`
	Acidity      *float64 `json:"acidity" yaml:"acidity" validate:"omitempty,gte=0"`
	Body         *float64 `json:"body" yaml:"body" validate:"omitempty,gte=0"`
	Aromas       []string `json:"aromas" yaml:"aromas"`
	PriceKRW     *int     `json:"price_krw" yaml:"price_krw" validate:"omitempty,gte=0"`
}

func (w *Wine) ToString() string {
	vintage := "NV"
	if w.Vintage != nil {
		vintage = fmt.Sprintf("%d", *w.Vintage)
	}
	return fmt.Sprintf("Wine(name=%s, country=%s, subregion=%s, vintage=%s)",
		w.WineName, w.Country, w.Subregion, vintage)
}

// HasAroma reports whether the wine lists the aroma.
func (w *Wine) HasAroma(aroma string) bool {
	for _, a := range w.Aromas {
		if a == aroma {
			return true
		}
	}
	return false
}

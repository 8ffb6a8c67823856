package models

// FilterRequest mirrors the POST /wines/filter body. Nil pointers and empty
// slices are omitted so the server applies its own "no restriction" rule.
type FilterRequest struct {
	Page         int      `json:"page"`
	PriceKRWMin  *float64 `json:"price_krw_min,omitempty"`
	PriceKRWMax  *float64 `json:"price_krw_max,omitempty"`
	WineType     []string `json:"wine_type,omitempty"`
	Country      []string `json:"country,omitempty"`
	Vintage      []int    `json:"vintage,omitempty"`
	GrapeOrStyle []string `json:"grape_or_style,omitempty"`
	TanninMin    *float64 `json:"tannin_min,omitempty"`
	TanninMax    *float64 `json:"tannin_max,omitempty"`
	SweetnessMin *float64 `json:"sweetness_min,omitempty"`
	SweetnessMax *float64 `json:"sweetness_max,omitempty"`
	AcidityMin   *float64 `json:"acidity_min,omitempty"`
	AcidityMax   *float64 `json:"acidity_max,omitempty"`
	BodyMin      *float64 `json:"body_min,omitempty"`
	BodyMax      *float64 `json:"body_max,omitempty"`
	AlcoholMin   *float64 `json:"alcohol_min,omitempty"`
	AlcoholMax   *float64 `json:"alcohol_max,omitempty"`
}

// CompareRequest mirrors the POST /wines/compare body.
type CompareRequest struct {
	IDs []string `json:"ids"`
}

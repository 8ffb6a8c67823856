package models

// WinePage matches the page-shaped body returned by /wines, /wines/search,
// /wines/filter and /wines/compare. Total counts every page, not just this one.
type WinePage struct {
	Total int    `json:"total" validate:"gte=0"`
	Page  int    `json:"page" validate:"gte=1"`
	Wines []Wine `json:"wines" validate:"dive"`
}

// WineCollection is a page-independent result: the server-reported total plus
// however many wines were gathered.
type WineCollection struct {
	Total int    `json:"total" yaml:"total"`
	Wines []Wine `json:"wines" yaml:"wines"`
}

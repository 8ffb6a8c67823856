package models

// FilterOptions matches GET /wines/filter-options. It lists the distinct
// categorical values in the dataset and is only used to populate controls.
type FilterOptions struct {
	WineType     []string `json:"wine_type" yaml:"wine_type"`
	Country      []string `json:"country" yaml:"country"`
	Vintage      []int    `json:"vintage" yaml:"vintage"`
	GrapeOrStyle []string `json:"grape_or_style" yaml:"grape_or_style"`
}

// AvailableOptions is the locally derived counterpart of FilterOptions. It
// also covers the dimensions the server cannot enumerate (subregion, aroma).
type AvailableOptions struct {
	WineTypes      []string `json:"wine_types" yaml:"wine_types"`
	Countries      []string `json:"countries" yaml:"countries"`
	Subregions     []string `json:"subregions" yaml:"subregions"`
	Vintages       []int    `json:"vintages" yaml:"vintages"`
	GrapeVarieties []string `json:"grape_varieties" yaml:"grape_varieties"`
	Aromas         []string `json:"aromas" yaml:"aromas"`
}

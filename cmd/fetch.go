package cmd

import (
	"fmt"
	"log"
	"slices"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"wine-explorer/filter"
	"wine-explorer/models"
	services "wine-explorer/service"
	"wine-explorer/state"
	"wine-explorer/util"
)

var (
	fetchLimit      int
	fetchFormat     string
	fetchOut        string
	fetchQuiet      bool
	fetchWineTypes  []string
	fetchCountries  []string
	fetchSubregions []string
	fetchGrapes     []string
	fetchAromas     []string
	fetchVintages   []int
	fetchMinPrice   int
	fetchMaxPrice   int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Aggregate the catalog, optionally filtered, and print it",
	Long: `Fetch pages from the wines API until --limit wines are collected.

Any filter flag switches to the filter endpoint; --subregion and --aroma
are applied locally after the fetch.

Example:
  wine-explorer fetch --limit 300 --country France --subregion Bordeaux
  wine-explorer fetch --format yaml --out catalog.json`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVarP(&fetchLimit, "limit", "l", 0, "maximum number of wines (default: catalog_limit)")
	fetchCmd.Flags().StringVarP(&fetchFormat, "format", "f", FORMAT_JSON, "output format: json or yaml")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "write the wines to this JSON file instead of stdout")
	fetchCmd.Flags().BoolVarP(&fetchQuiet, "quiet", "q", false, "hide the progress bar")
	fetchCmd.Flags().StringSliceVar(&fetchWineTypes, "wine-type", nil, "wine types to keep")
	fetchCmd.Flags().StringSliceVar(&fetchCountries, "country", nil, "countries to keep")
	fetchCmd.Flags().StringSliceVar(&fetchSubregions, "subregion", nil, "subregions to keep")
	fetchCmd.Flags().StringSliceVar(&fetchGrapes, "grape", nil, "grape varieties or styles to keep")
	fetchCmd.Flags().StringSliceVar(&fetchAromas, "aroma", nil, "aromas; a wine with any of them is kept")
	fetchCmd.Flags().IntSliceVar(&fetchVintages, "vintage", nil, "vintages to keep")
	fetchCmd.Flags().IntVar(&fetchMinPrice, "min-price", 0, "minimum price in KRW")
	fetchCmd.Flags().IntVar(&fetchMaxPrice, "max-price", 0, "maximum price in KRW")
}

func runFetch(cmd *cobra.Command, args []string) error {
	spec, err := fetchSpec()
	if err != nil {
		return err
	}

	var opts []services.AggregatorOption
	if !fetchQuiet {
		opts = append(opts, services.WithProgress(newPageProgress(cmd)))
	}

	container, err := newContainer(cmd, opts...)
	if err != nil {
		return err
	}
	defer container.Close()

	var collection *models.WineCollection
	if spec.IsDefault() {
		collection, err = container.WineService.LoadCatalog(cmd.Context(), fetchLimit)
	} else {
		collection, err = container.WineService.FetchFiltered(cmd.Context(), spec, fetchLimit)
	}
	if err != nil {
		return err
	}

	if fetchOut != "" {
		if err := util.WriteWinesToJSON(fetchOut, collection.Wines); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d of %d wines to %s\n", len(collection.Wines), collection.Total, fetchOut)
		return nil
	}
	return writeOutput(cmd.OutOrStdout(), fetchFormat, collection)
}

// fetchSpec selects every flag value through a FilterState, so repeated
// values collapse and an inverted price range is rejected.
func fetchSpec() (models.FilterSpec, error) {
	filterState := state.NewFilterState()
	unsubscribe := filterState.Subscribe(func(spec models.FilterSpec) {
		if !spec.IsDefault() {
			log.Printf("[Fetch] Filtering on %d countries, %d subregions, %d wine types, %d grapes, %d aromas, %d vintages",
				len(spec.Countries), len(spec.Subregions), len(spec.WineTypes),
				len(spec.GrapeVarieties), len(spec.Aromas), len(spec.Vintages))
		}
	})
	defer unsubscribe()

	// Selecting a country never drops subregions, so no index is needed.
	noIndex := filter.SubregionIndex{}
	err := filterState.Update(func(spec models.FilterSpec) models.FilterSpec {
		for _, c := range fetchCountries {
			if !slices.Contains(spec.Countries, c) {
				spec = filter.ToggleCountry(spec, c, noIndex)
			}
		}
		spec = selectEach(spec, fetchSubregions, spec.Subregions, filter.ToggleSubregion)
		spec = selectEach(spec, fetchWineTypes, spec.WineTypes, filter.ToggleWineType)
		spec = selectEach(spec, fetchGrapes, spec.GrapeVarieties, filter.ToggleGrape)
		spec = selectEach(spec, fetchAromas, spec.Aromas, filter.ToggleAroma)
		spec = selectEach(spec, fetchVintages, spec.Vintages, filter.ToggleVintage)
		if fetchMinPrice > 0 {
			spec.PriceRange.Min = float64(fetchMinPrice)
		}
		if fetchMaxPrice > 0 {
			spec.PriceRange.Max = float64(fetchMaxPrice)
		}
		return spec
	})
	if err != nil {
		return models.FilterSpec{}, err
	}
	return filterState.Get(), nil
}

// selectEach toggles on every value not already in selected.
func selectEach[T comparable](spec models.FilterSpec, values, selected []T, toggle func(models.FilterSpec, T) models.FilterSpec) models.FilterSpec {
	seen := slices.Clone(selected)
	for _, v := range values {
		if slices.Contains(seen, v) {
			continue
		}
		seen = append(seen, v)
		spec = toggle(spec, v)
	}
	return spec
}

// newPageProgress draws a page progress bar on stderr. The bar is sized on
// the first report, once page 1 has revealed the page count.
func newPageProgress(cmd *cobra.Command) services.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("fetching pages"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
		if done == total {
			_ = bar.Finish()
		}
	}
}

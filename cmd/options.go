package cmd

import (
	"github.com/spf13/cobra"

	"wine-explorer/filter"
	"wine-explorer/search"
)

var (
	optionsFind    string
	optionsLocal   bool
	optionsLimit   int
	optionsFormat  string
	optionsSuggest int
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the filter options",
	Long: `Print the categorical filter options served by the wines API, or with
--local the options derived from the loaded catalog (which also lists
subregions and aromas). --find narrows every list to fuzzy matches.

Example:
  wine-explorer options --find fra
  wine-explorer options --local --format json`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().StringVar(&optionsFind, "find", "", "keep only options matching this pattern")
	optionsCmd.Flags().BoolVar(&optionsLocal, "local", false, "derive options from the catalog")
	optionsCmd.Flags().IntVarP(&optionsLimit, "limit", "l", 0, "catalog size for --local (default: catalog_limit)")
	optionsCmd.Flags().StringVarP(&optionsFormat, "format", "f", FORMAT_YAML, "output format: json or yaml")
	optionsCmd.Flags().IntVar(&optionsSuggest, "max", 0, "maximum entries per list with --find")
}

func runOptions(cmd *cobra.Command, args []string) error {
	container, err := newContainer(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	if !optionsLocal {
		options, err := container.WineService.GetFilterOptions(cmd.Context())
		if err != nil {
			return err
		}
		if optionsFind != "" {
			options = search.SuggestFilterOptions(optionsFind, options, optionsSuggest)
		}
		return writeOutput(cmd.OutOrStdout(), optionsFormat, options)
	}

	catalog, err := container.WineService.LoadCatalog(cmd.Context(), optionsLimit)
	if err != nil {
		return err
	}
	options := filter.AvailableOptionsFrom(catalog.Wines)
	if optionsFind != "" {
		options.WineTypes = search.SuggestOptions(optionsFind, options.WineTypes, optionsSuggest)
		options.Countries = search.SuggestOptions(optionsFind, options.Countries, optionsSuggest)
		options.Subregions = search.SuggestOptions(optionsFind, options.Subregions, optionsSuggest)
		options.GrapeVarieties = search.SuggestOptions(optionsFind, options.GrapeVarieties, optionsSuggest)
		options.Aromas = search.SuggestOptions(optionsFind, options.Aromas, optionsSuggest)
	}
	return writeOutput(cmd.OutOrStdout(), optionsFormat, options)
}

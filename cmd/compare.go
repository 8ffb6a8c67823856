package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wine-explorer/state"
	"wine-explorer/util"
)

var (
	compareOut   string
	compareLimit int
)

var compareCmd = &cobra.Command{
	Use:   "compare <wine name>...",
	Short: "Render a taste-profile radar chart for up to 5 wines",
	Long: `Look the named wines up in the catalog and write an HTML radar chart of
their tannin, sweetness, acidity, body and alcohol. Names are matched
exactly; the first catalog entry with a name wins.

Example:
  wine-explorer compare "Chateau Margaux" "Tignanello" --out margaux.html`,
	Args: cobra.RangeArgs(1, state.MaxCompareSelection),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareOut, "out", "o", "comparison.html", "HTML file to write")
	compareCmd.Flags().IntVarP(&compareLimit, "limit", "l", 0, "catalog size to search (default: catalog_limit)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	selection := state.NewCompareSelection()
	for _, name := range args {
		if selection.Contains(name) {
			continue
		}
		if _, err := selection.Toggle(name); err != nil {
			return err
		}
	}

	container, err := newContainer(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	catalog, err := container.WineService.LoadCatalog(cmd.Context(), compareLimit)
	if err != nil {
		return err
	}

	wines := selection.Resolve(catalog.Wines)
	if len(wines) == 0 {
		return fmt.Errorf("none of %v found in the first %d wines", selection.Names(), len(catalog.Wines))
	}
	if len(wines) < selection.Len() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d of %d wines\n", len(wines), selection.Len())
	}

	if err := util.WriteComparisonRadar(compareOut, wines); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote comparison of %d wines to %s\n", len(wines), compareOut)
	return nil
}

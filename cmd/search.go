package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wine-explorer/models"
	services "wine-explorer/service"
)

var (
	searchRemote      bool
	searchInteractive bool
	searchPage        int
	searchLimit       int
	searchFormat      string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy-search the catalog, or query the search endpoint",
	Long: `Search wines by name, grape, country, subregion or type.

Local search (the default) loads the catalog and keeps every wine with a
field within the fuzzy threshold of the query. --remote sends the query to
the wines API instead. --interactive reads one query per line from stdin and
prints the debounced remote result of the last query typed.

Example:
  wine-explorer search bordo
  wine-explorer search --remote "pinot noir" --page 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchRemote, "remote", "r", false, "use the wines API search endpoint")
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false, "read queries from stdin")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "page of remote results")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "catalog size for local search (default: catalog_limit)")
	searchCmd.Flags().StringVarP(&searchFormat, "format", "f", "", "print full records as json or yaml instead of one line per wine")
}

func runSearch(cmd *cobra.Command, args []string) error {
	container, err := newContainer(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	if searchInteractive {
		return runInteractiveSearch(cmd, container.SearchService, cmd.InOrStdin())
	}
	if len(args) == 0 {
		return fmt.Errorf("a query is required unless --interactive is set")
	}
	query := args[0]

	var wines []models.Wine
	if searchRemote {
		page, err := container.SearchService.Remote(cmd.Context(), query, searchPage)
		if err != nil {
			return err
		}
		wines = page.Wines
	} else {
		catalog, err := container.WineService.LoadCatalog(cmd.Context(), searchLimit)
		if err != nil {
			return err
		}
		wines = container.SearchService.Local(catalog.Wines, query)
	}
	return printWines(cmd.OutOrStdout(), searchFormat, wines)
}

// runInteractiveSearch submits every input line and prints results as they
// arrive. Results superseded by a newer line are dropped by the service.
func runInteractiveSearch(cmd *cobra.Command, searchService *services.SearchService, in io.Reader) error {
	out := cmd.OutOrStdout()
	delivered := make(chan uint64, 1)
	var last uint64

	searchService.OnResult(func(res services.SearchResult) {
		if res.Err != nil {
			fmt.Fprintf(out, "search %q failed: %v\n", res.Query, res.Err)
		} else {
			fmt.Fprintf(out, "%q: %d of %d\n", res.Query, len(res.Page.Wines), res.Page.Total)
			_ = printWines(out, searchFormat, res.Page.Wines)
		}
		select {
		case delivered <- res.Generation:
		default:
		}
	})

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		last = searchService.Submit(cmd.Context(), strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if last == 0 {
		return nil
	}

	// wait for the final query to settle
	for {
		if latest := searchService.Latest(); latest != nil && latest.Generation == last {
			return nil
		}
		select {
		case <-delivered:
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}
}

func printWines(w io.Writer, format string, wines []models.Wine) error {
	if format != "" {
		return writeOutput(w, format, wines)
	}
	for i := range wines {
		fmt.Fprintln(w, wines[i].ToString())
	}
	return nil
}

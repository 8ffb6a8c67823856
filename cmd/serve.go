package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var warmCatalog bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and the catalog refresher",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&warmCatalog, "warm", true, "load and cache the catalog before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	container, err := newContainer(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	ctx := cmd.Context()
	if warmCatalog {
		log.Println("[Serve] Warming catalog cache")
		if err := container.CatalogRefresherService.RefreshCachedCatalogs(ctx); err != nil {
			log.Printf("[Serve] Catalog warm-up failed, serving anyway: %v", err)
		}
	}

	container.CatalogRefresherService.StartPeriodicJob(ctx, container.Config.RefreshInterval)

	return container.WineExplorerHttpServer.Start(ctx)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wine-explorer/config"
	"wine-explorer/di"
	services "wine-explorer/service"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wine-explorer",
	Short: "Browse, filter, search and compare a remote wine catalog",
	Long: `Wine Explorer aggregates the paginated wines API into full catalogs,
filters them (including the subregion and aroma dimensions the API cannot
filter on), fuzzy-searches them and renders taste-profile comparisons.

Examples:
  wine-explorer serve
  wine-explorer fetch --limit 500 --format yaml
  wine-explorer search "cabernet"
  wine-explorer compare "Chateau Margaux" "Tignanello"`,
	SilenceUsage: true,
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("env", config.ENV_DEV, "environment; prod uses the live wines API")
	rootCmd.PersistentFlags().String("api-base-url", config.OPENER_API_BASE_URL, "wines API base URL")
	rootCmd.PersistentFlags().String("redis-address", config.REDIS_DB_ADDRESS, "redis address; empty keeps the cache in memory")
	rootCmd.PersistentFlags().String("fixture", "", "wines fixture used outside prod")

	viper.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
	viper.BindPFlag("api_base_url", rootCmd.PersistentFlags().Lookup("api-base-url"))
	viper.BindPFlag("redis_address", rootCmd.PersistentFlags().Lookup("redis-address"))
	viper.BindPFlag("fixture_path", rootCmd.PersistentFlags().Lookup("fixture"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(optionsCmd)
}

// newContainer resolves the configuration and wires the application.
func newContainer(cmd *cobra.Command, aggregatorOpts ...services.AggregatorOption) (*di.Container, error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, err
	}
	return di.NewContainer(cmd.Context(), cfg, aggregatorOpts...)
}

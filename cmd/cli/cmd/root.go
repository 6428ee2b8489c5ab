// Package cmd provides the CLI commands for nava-ops.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nava-ops/core/pricing"
	"nava-ops/internal/config"
	"nava-ops/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nava-ops",
	Short: "Branch-based subscription pricing and brand analytics",
	Long: `nava-ops prices multi-branch subscriptions and summarizes
per-branch performance for a brand.

The subscription price is driven entirely by the number of active
branches; plans live in an HCL catalog with exactly one active plan.

Examples:
  nava-ops quote 5
  nava-ops quote --format json 12
  nava-ops diff 3 5
  nava-ops branches list --brand brand-1`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nava-ops/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// activePlan loads the active plan from the configured catalog, falling
// back to the built-in standard plan when no catalog file exists
func activePlan() (pricing.Config, error) {
	path := config.Get().Catalog.Path
	if path == "" {
		return pricing.Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return pricing.Default(), nil
	}
	return pricing.LoadCatalog(path)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nava-ops version 0.1.0")
	},
}

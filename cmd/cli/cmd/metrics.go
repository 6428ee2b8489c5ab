// Package cmd - metrics command
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nava-ops/adapters/statistics"
	"nava-ops/core/output"
	"nava-ops/core/pricing"
	"nava-ops/internal/config"
)

var metricsFormat string

// metricsCmd represents the metrics command
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Summarize a brand's per-branch performance",
	Long: `Fetch every branch's statistics for the reporting period and
reduce them into a brand-level summary. Branches whose statistics cannot
be fetched are skipped; the summary reports how many were excluded.

Examples:
  nava-ops metrics --brand brand-1
  nava-ops metrics --brand brand-1 --format markdown`,
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().StringVarP(&brandID, "brand", "b", "", "brand ID (required)")
	metricsCmd.Flags().StringVarP(&metricsFormat, "format", "f", "cli", "output format (cli, json, markdown)")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	if err := requireBrand(); err != nil {
		return err
	}
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	defer reg.Close()

	cfg := config.Get()
	provider, err := statistics.NewPostgresProvider(cfg.Database.DSN, cfg.Statistics.Period())
	if err != nil {
		return err
	}
	defer provider.Close()

	ctx := context.Background()
	branches, err := reg.List(ctx, brandID)
	if err != nil {
		return err
	}
	summary, skipped := statistics.NewCollector(provider).Summarize(ctx, branches)

	plan, err := activePlan()
	if err != nil {
		return err
	}
	count, err := reg.CountActive(ctx, brandID)
	if err != nil {
		return err
	}
	calc := pricing.NewCalculator(plan)

	formatter, err := output.New(output.Format(metricsFormat))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.Report{
		PlanName:        plan.PlanName,
		Breakdown:       calc.Breakdown(count),
		Summary:         summary,
		BranchesSkipped: skipped,
		GeneratedAt:     time.Now().UTC(),
	})
}

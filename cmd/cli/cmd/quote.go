// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"nava-ops/core/output"
	"nava-ops/core/pricing"
)

var quoteFormat string

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <branch-count>",
	Short: "Quote the subscription price for a branch count",
	Long: `Compute the full pricing breakdown for a branch count.

Counts below the plan minimum are clamped up; the quote always reflects
the count that would actually be billed.

Examples:
  nava-ops quote 5
  nava-ops quote --format markdown 12`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "cli", "output format (cli, json, markdown)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("branch count must be an integer: %q", args[0])
	}

	plan, err := activePlan()
	if err != nil {
		return err
	}
	calc := pricing.NewCalculator(plan)

	if v := calc.ValidateBranchCount(count); !v.IsValid {
		fmt.Fprintf(os.Stderr, "warning: %s; quoting the plan minimum\n", v.Error)
	}

	formatter, err := output.New(output.Format(quoteFormat))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.Report{
		PlanName:    plan.PlanName,
		Breakdown:   calc.Breakdown(count),
		GeneratedAt: time.Now().UTC(),
	})
}

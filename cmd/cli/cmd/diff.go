// Package cmd - diff command
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"nava-ops/core/diff"
	"nava-ops/core/output"
	"nava-ops/core/pricing"
)

var diffFormat string

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <current-branches> <new-branches>",
	Short: "Preview the price impact of a branch count change",
	Long: `Compare the subscription price at two branch counts, as shown to
an owner before a branch is added or removed.

Examples:
  nava-ops diff 3 5
  nava-ops diff --format json 10 8`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffFormat, "format", "f", "cli", "output format (cli, json, markdown)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	current, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("current branch count must be an integer: %q", args[0])
	}
	next, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("new branch count must be an integer: %q", args[1])
	}

	plan, err := activePlan()
	if err != nil {
		return err
	}
	calc := pricing.NewCalculator(plan)
	result := diff.NewEvaluator(calc).Evaluate(current, next)

	formatter, err := output.New(output.Format(diffFormat))
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &output.Report{
		PlanName:    plan.PlanName,
		Breakdown:   calc.Breakdown(next),
		Diff:        result,
		GeneratedAt: time.Now().UTC(),
	})
}

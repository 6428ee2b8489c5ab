// Package output - Terminal report
package output

import (
	"fmt"
	"io"
	"strings"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the terminal report
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	bd := report.Breakdown
	cur := bd.CurrencyCode

	fmt.Fprintf(w, "Subscription quote, plan %q\n", report.PlanName)
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", 48))
	fmt.Fprintf(w, "  Branches            %d\n", bd.BranchCount)
	fmt.Fprintf(w, "  Base price          %s\n", FormatAmount(cur, bd.BasePrice))
	if bd.AdditionalBranches > 0 {
		fmt.Fprintf(w, "  Additional (%d)      %s\n", bd.AdditionalBranches, FormatAmount(cur, bd.AdditionalBranchCost))
	}
	fmt.Fprintf(w, "  Monthly total       %s\n", FormatAmount(cur, bd.MonthlyTotal))
	fmt.Fprintf(w, "  Yearly total        %s (save %s)\n", FormatAmount(cur, bd.YearlyTotal), FormatAmount(cur, bd.YearlySavings))
	fmt.Fprintf(w, "  Per branch          %s/month\n", FormatAmount(cur, bd.PerBranchMonthly))

	if d := report.Diff; d != nil {
		fmt.Fprintf(w, "\nChange preview: %d → %d branches\n", d.CurrentBranchCount, d.NewBranchCount)
		arrow := "→"
		if d.IsIncrease {
			arrow = "↑"
		} else if d.IsDecrease {
			arrow = "↓"
		}
		fmt.Fprintf(w, "  %s %s %s (%s %s)\n",
			FormatAmount(cur, d.CurrentPrice), arrow, FormatAmount(cur, d.NewPrice),
			FormatAmount(cur, d.Delta), FormatPercent(d.PercentChange))
	}

	if s := report.Summary; s != nil {
		fmt.Fprintf(w, "\nBrand performance (%d branches", s.BranchesIncluded)
		if report.BranchesSkipped > 0 {
			fmt.Fprintf(w, ", %d skipped", report.BranchesSkipped)
		}
		fmt.Fprintf(w, ")\n")
		fmt.Fprintf(w, "  Revenue             %s\n", FormatAmount(cur, s.TotalRevenue))
		fmt.Fprintf(w, "  Orders              %d\n", s.TotalOrders)
		fmt.Fprintf(w, "  Avg order value     %s\n", FormatAmount(cur, s.AverageOrderValue))
		fmt.Fprintf(w, "  Avg growth          %s\n", FormatPercent(s.AverageGrowthPercent))
		for i, m := range s.BranchPerformance {
			fmt.Fprintf(w, "  %2d. %-20s %s\n", i+1, m.Name, FormatAmount(cur, m.Revenue))
		}
	}

	return nil
}

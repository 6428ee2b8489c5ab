// Package output - Markdown report
package output

import (
	"fmt"
	"io"
)

// MarkdownFormatter renders the report as a markdown document, suitable
// for dashboards and emailed summaries
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the markdown report
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	bd := report.Breakdown
	cur := bd.CurrencyCode

	fmt.Fprintf(w, "## Subscription quote: plan `%s`\n\n", report.PlanName)
	fmt.Fprintf(w, "| | |\n|---|---|\n")
	fmt.Fprintf(w, "| Branches | %d |\n", bd.BranchCount)
	fmt.Fprintf(w, "| Base price | %s |\n", FormatAmount(cur, bd.BasePrice))
	fmt.Fprintf(w, "| Additional branches | %d (%s) |\n", bd.AdditionalBranches, FormatAmount(cur, bd.AdditionalBranchCost))
	fmt.Fprintf(w, "| **Monthly total** | **%s** |\n", FormatAmount(cur, bd.MonthlyTotal))
	fmt.Fprintf(w, "| **Yearly total** | **%s** |\n", FormatAmount(cur, bd.YearlyTotal))
	fmt.Fprintf(w, "| Yearly savings | %s |\n", FormatAmount(cur, bd.YearlySavings))
	fmt.Fprintf(w, "| Per branch | %s/month |\n", FormatAmount(cur, bd.PerBranchMonthly))

	if d := report.Diff; d != nil {
		fmt.Fprintf(w, "\n### Change preview\n\n")
		fmt.Fprintf(w, "%d → %d branches: %s → %s (%s, %s)\n",
			d.CurrentBranchCount, d.NewBranchCount,
			FormatAmount(cur, d.CurrentPrice), FormatAmount(cur, d.NewPrice),
			FormatAmount(cur, d.Delta), FormatPercent(d.PercentChange))
	}

	if s := report.Summary; s != nil {
		fmt.Fprintf(w, "\n### Brand performance\n\n")
		fmt.Fprintf(w, "Revenue %s over %d orders across %d branches",
			FormatAmount(cur, s.TotalRevenue), s.TotalOrders, s.BranchesIncluded)
		if report.BranchesSkipped > 0 {
			fmt.Fprintf(w, " (%d skipped)", report.BranchesSkipped)
		}
		fmt.Fprintf(w, ".\n\n")
		fmt.Fprintf(w, "| # | Branch | Revenue | Orders | Growth |\n|---|---|---|---|---|\n")
		for i, m := range s.BranchPerformance {
			fmt.Fprintf(w, "| %d | %s | %s | %d | %s |\n",
				i+1, m.Name, FormatAmount(cur, m.Revenue), m.Orders, FormatPercent(m.GrowthPercent))
		}
	}

	return nil
}

// Package metrics reduces per-branch statistics into a brand-level summary.
// The per-branch metrics come from an external statistics provider; this
// package only reads completed values and never fetches anything itself.
package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"nava-ops/core/types"
)

// Summary is the brand-level reduction of per-branch metrics
type Summary struct {
	// TotalRevenue is the revenue summed across branches
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	// TotalOrders is the order count summed across branches
	TotalOrders int64 `json:"total_orders"`

	// AverageOrderValue is revenue per order, zero when there are no orders
	AverageOrderValue decimal.Decimal `json:"average_order_value"`

	// AverageGrowthPercent is the mean branch growth, zero for an empty input
	AverageGrowthPercent decimal.Decimal `json:"average_growth_percent"`

	// BranchPerformance lists branches by revenue, highest first.
	// Ties keep their original relative order.
	BranchPerformance []types.BranchMetric `json:"branch_performance"`

	// BranchesIncluded is how many branches contributed to the summary
	BranchesIncluded int `json:"branches_included"`
}

// FetchResult is one branch's fetch outcome from the statistics provider
type FetchResult struct {
	Metric types.BranchMetric
	Err    error
}

// Aggregate reduces completed branch metrics into a brand summary
func Aggregate(branchMetrics []types.BranchMetric) *Summary {
	summary := &Summary{
		TotalRevenue:         decimal.Zero,
		AverageOrderValue:    decimal.Zero,
		AverageGrowthPercent: decimal.Zero,
		BranchPerformance:    make([]types.BranchMetric, len(branchMetrics)),
		BranchesIncluded:     len(branchMetrics),
	}

	growthSum := decimal.Zero
	for _, m := range branchMetrics {
		summary.TotalRevenue = summary.TotalRevenue.Add(m.Revenue)
		summary.TotalOrders += m.Orders
		growthSum = growthSum.Add(m.GrowthPercent)
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.
			Div(decimal.NewFromInt(summary.TotalOrders)).Round(types.MoneyScale)
	}
	if len(branchMetrics) > 0 {
		summary.AverageGrowthPercent = growthSum.
			Div(decimal.NewFromInt(int64(len(branchMetrics)))).Round(2)
	}

	// Sort a copy; the caller's slice stays untouched
	copy(summary.BranchPerformance, branchMetrics)
	sort.SliceStable(summary.BranchPerformance, func(i, j int) bool {
		return summary.BranchPerformance[i].Revenue.GreaterThan(summary.BranchPerformance[j].Revenue)
	})

	return summary
}

// AggregateResults reduces fetch outcomes, skipping failed branches.
// A failed fetch excludes that branch from the summary instead of aborting
// the whole computation. Returns the summary and how many branches were
// skipped.
func AggregateResults(results []FetchResult) (*Summary, int) {
	completed := make([]types.BranchMetric, 0, len(results))
	skipped := 0
	for _, r := range results {
		if r.Err != nil {
			skipped++
			continue
		}
		completed = append(completed, r.Metric)
	}
	return Aggregate(completed), skipped
}

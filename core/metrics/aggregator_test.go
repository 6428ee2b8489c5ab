// Package metrics - Aggregation tests
package metrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"nava-ops/core/types"
	"nava-ops/internal/errors"
)

func metric(id string, revenue string, orders int64, growth string) types.BranchMetric {
	return types.BranchMetric{
		BranchID:      id,
		Name:          "Branch " + id,
		Revenue:       decimal.RequireFromString(revenue),
		Orders:        orders,
		GrowthPercent: decimal.RequireFromString(growth),
	}
}

// TestAggregateEmpty verifies the empty-input policy: all zeros, no entries
func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)

	if !s.TotalRevenue.IsZero() {
		t.Errorf("TotalRevenue = %s, want 0", s.TotalRevenue)
	}
	if s.TotalOrders != 0 {
		t.Errorf("TotalOrders = %d, want 0", s.TotalOrders)
	}
	if !s.AverageOrderValue.IsZero() {
		t.Errorf("AverageOrderValue = %s, want 0", s.AverageOrderValue)
	}
	if !s.AverageGrowthPercent.IsZero() {
		t.Errorf("AverageGrowthPercent = %s, want 0", s.AverageGrowthPercent)
	}
	if len(s.BranchPerformance) != 0 {
		t.Errorf("BranchPerformance has %d entries, want 0", len(s.BranchPerformance))
	}
}

// TestAggregateTotals checks sums, average order value, and mean growth
func TestAggregateTotals(t *testing.T) {
	s := Aggregate([]types.BranchMetric{
		metric("a", "12000", 300, "5"),
		metric("b", "8000", 100, "-2.5"),
		metric("c", "4000", 100, "12.5"),
	})

	if got := s.TotalRevenue.String(); got != "24000" {
		t.Errorf("TotalRevenue = %s, want 24000", got)
	}
	if s.TotalOrders != 500 {
		t.Errorf("TotalOrders = %d, want 500", s.TotalOrders)
	}
	if got := s.AverageOrderValue.String(); got != "48" {
		t.Errorf("AverageOrderValue = %s, want 48", got)
	}
	if got := s.AverageGrowthPercent.String(); got != "5" {
		t.Errorf("AverageGrowthPercent = %s, want 5", got)
	}
	if s.BranchesIncluded != 3 {
		t.Errorf("BranchesIncluded = %d, want 3", s.BranchesIncluded)
	}
}

// TestAggregateZeroOrders verifies the division guard on average order value
func TestAggregateZeroOrders(t *testing.T) {
	s := Aggregate([]types.BranchMetric{
		metric("a", "1000", 0, "0"),
	})
	if !s.AverageOrderValue.IsZero() {
		t.Errorf("AverageOrderValue = %s, want 0 when there are no orders", s.AverageOrderValue)
	}
}

// TestAggregatePerformanceOrder verifies revenue-descending order with
// original order preserved for ties
func TestAggregatePerformanceOrder(t *testing.T) {
	in := []types.BranchMetric{
		metric("low", "100", 1, "0"),
		metric("tie-first", "500", 1, "0"),
		metric("high", "900", 1, "0"),
		metric("tie-second", "500", 1, "0"),
	}
	s := Aggregate(in)

	wantOrder := []string{"high", "tie-first", "tie-second", "low"}
	for i, want := range wantOrder {
		if s.BranchPerformance[i].BranchID != want {
			t.Errorf("BranchPerformance[%d] = %s, want %s", i, s.BranchPerformance[i].BranchID, want)
		}
	}

	// input slice must be untouched
	if in[0].BranchID != "low" || in[3].BranchID != "tie-second" {
		t.Error("Aggregate reordered the caller's slice")
	}
}

// TestAggregateResultsSkipsFailures verifies partial aggregation: a failed
// branch is excluded, everything else still counts
func TestAggregateResultsSkipsFailures(t *testing.T) {
	results := []FetchResult{
		{Metric: metric("a", "1000", 10, "1")},
		{Err: errors.Stats("fetching branch b", nil)},
		{Metric: metric("c", "3000", 30, "3")},
	}

	s, skipped := AggregateResults(results)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if s.BranchesIncluded != 2 {
		t.Errorf("BranchesIncluded = %d, want 2", s.BranchesIncluded)
	}
	if got := s.TotalRevenue.String(); got != "4000" {
		t.Errorf("TotalRevenue = %s, want 4000", got)
	}
	if s.TotalOrders != 40 {
		t.Errorf("TotalOrders = %d, want 40", s.TotalOrders)
	}
}

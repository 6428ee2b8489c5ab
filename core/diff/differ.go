// Package diff previews the cost impact of changing a brand's branch count.
// Used before a branch add/remove is committed, so the owner sees the new
// subscription price first.
package diff

import (
	"github.com/shopspring/decimal"

	"nava-ops/core/pricing"
	"nava-ops/core/types"
)

// Result is the price delta between two branch counts
type Result struct {
	// CurrentBranchCount is the branch count before the change
	CurrentBranchCount int `json:"current_branch_count"`

	// NewBranchCount is the branch count after the change
	NewBranchCount int `json:"new_branch_count"`

	// CurrentPrice is the monthly price at the current count
	CurrentPrice decimal.Decimal `json:"current_price"`

	// NewPrice is the monthly price at the new count
	NewPrice decimal.Decimal `json:"new_price"`

	// Delta is NewPrice - CurrentPrice
	Delta decimal.Decimal `json:"delta"`

	// BranchDelta is the change in branch count
	BranchDelta int `json:"branch_delta"`

	// IsIncrease reports whether the price goes up
	IsIncrease bool `json:"is_increase"`

	// IsDecrease reports whether the price goes down
	IsDecrease bool `json:"is_decrease"`

	// PercentChange is the delta relative to the current price, in percent.
	// Zero when the current price is zero.
	PercentChange decimal.Decimal `json:"percent_change"`

	// CurrencyCode is the plan currency
	CurrencyCode types.Currency `json:"currency_code"`
}

// Evaluator computes price diffs against one plan
type Evaluator struct {
	calc *pricing.Calculator
}

// NewEvaluator creates an evaluator backed by the given calculator
func NewEvaluator(calc *pricing.Calculator) *Evaluator {
	return &Evaluator{calc: calc}
}

// Evaluate computes the monthly price difference between two branch counts
func (e *Evaluator) Evaluate(currentBranchCount, newBranchCount int) *Result {
	current := e.calc.MonthlyPrice(currentBranchCount)
	next := e.calc.MonthlyPrice(newBranchCount)
	delta := next.Sub(current)

	percent := decimal.Zero
	if current.IsPositive() {
		percent = delta.Div(current).Mul(decimal.NewFromInt(100))
	}

	return &Result{
		CurrentBranchCount: currentBranchCount,
		NewBranchCount:     newBranchCount,
		CurrentPrice:       types.RoundMoney(current),
		NewPrice:           types.RoundMoney(next),
		Delta:              types.RoundMoney(delta),
		BranchDelta:        newBranchCount - currentBranchCount,
		IsIncrease:         delta.IsPositive(),
		IsDecrease:         delta.IsNegative(),
		PercentChange:      percent.Round(2),
		CurrencyCode:       e.calc.Config().CurrencyCode,
	}
}

// Package pricing - Calculator and breakdown
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"nava-ops/core/types"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Breakdown is the full structured pricing result for a branch count.
// All monetary fields are rounded to the presentation scale; computation
// leading up to them is unrounded.
type Breakdown struct {
	// BranchCount is the effective (clamped) branch count that was priced
	BranchCount int `json:"branch_count"`

	// BasePrice is the monthly price of the first branch
	BasePrice decimal.Decimal `json:"base_price"`

	// AdditionalBranches is the number of branches beyond the first
	AdditionalBranches int `json:"additional_branches"`

	// AdditionalBranchCost is the monthly cost of the additional branches
	AdditionalBranchCost decimal.Decimal `json:"additional_branch_cost"`

	// MonthlyTotal is the monthly subscription price
	MonthlyTotal decimal.Decimal `json:"monthly_total"`

	// YearlyTotal is the discounted price of a yearly subscription
	YearlyTotal decimal.Decimal `json:"yearly_total"`

	// YearlySavings is the amount saved by paying yearly
	YearlySavings decimal.Decimal `json:"yearly_savings"`

	// PerBranchMonthly is the monthly price divided across branches
	PerBranchMonthly decimal.Decimal `json:"per_branch_monthly"`

	// PerMonthYearly is the effective monthly cost under yearly billing
	PerMonthYearly decimal.Decimal `json:"per_month_yearly"`

	// CurrencyCode is the plan currency
	CurrencyCode types.Currency `json:"currency_code"`
}

// Calculator computes subscription prices from a branch count.
// It is stateless apart from the immutable plan config and is safe for
// concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator for the given plan
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config returns the plan the calculator prices against
func (c *Calculator) Config() Config {
	return c.cfg
}

// effectiveCount clamps a branch count up to the plan minimum.
// A brand is never priced below the single-branch base.
func (c *Calculator) effectiveCount(branchCount int) int {
	if branchCount < c.cfg.MinBranches {
		return c.cfg.MinBranches
	}
	return branchCount
}

// MonthlyPrice returns the monthly subscription price for a branch count.
// Counts below the plan minimum are clamped up before computation.
func (c *Calculator) MonthlyPrice(branchCount int) decimal.Decimal {
	count := c.effectiveCount(branchCount)
	additional := count - 1
	if additional < 0 {
		additional = 0
	}
	return c.cfg.BasePriceMonthly.Add(
		c.cfg.AdditionalBranchPriceMonthly.Mul(decimal.NewFromInt(int64(additional))))
}

// YearlyPrice returns the yearly subscription price using the plan's
// configured discount.
func (c *Calculator) YearlyPrice(branchCount int) decimal.Decimal {
	return c.YearlyPriceWithDiscount(branchCount, decimal.NewFromInt(int64(c.cfg.YearlyDiscountPercent)))
}

// YearlyPriceWithDiscount returns the yearly price with an explicit discount
// percent. The discount must be in [0,100]; passing a value outside that
// range is a programming error and panics.
func (c *Calculator) YearlyPriceWithDiscount(branchCount int, discountPercent decimal.Decimal) decimal.Decimal {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		panic(fmt.Sprintf("pricing: discount percent out of range [0,100]: %s", discountPercent))
	}
	yearly := c.MonthlyPrice(branchCount).Mul(twelve)
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	return yearly.Mul(factor)
}

// Breakdown computes the full pricing breakdown for a branch count.
// This is the presentation boundary: every monetary field is rounded here
// and nowhere earlier.
func (c *Calculator) Breakdown(branchCount int) Breakdown {
	count := c.effectiveCount(branchCount)
	additional := count - 1

	monthly := c.MonthlyPrice(count)
	yearlyFull := monthly.Mul(twelve)
	yearly := c.YearlyPrice(count)
	savings := yearlyFull.Sub(yearly)

	// count >= MinBranches >= 1, so the division is safe
	perBranch := monthly.Div(decimal.NewFromInt(int64(count)))
	perMonthYearly := yearly.Div(twelve)

	return Breakdown{
		BranchCount:          count,
		BasePrice:            types.RoundMoney(c.cfg.BasePriceMonthly),
		AdditionalBranches:   additional,
		AdditionalBranchCost: types.RoundMoney(c.cfg.AdditionalBranchPriceMonthly.Mul(decimal.NewFromInt(int64(additional)))),
		MonthlyTotal:         types.RoundMoney(monthly),
		YearlyTotal:          types.RoundMoney(yearly),
		YearlySavings:        types.RoundMoney(savings),
		PerBranchMonthly:     types.RoundMoney(perBranch),
		PerMonthYearly:       types.RoundMoney(perMonthYearly),
		CurrencyCode:         c.cfg.CurrencyCode,
	}
}

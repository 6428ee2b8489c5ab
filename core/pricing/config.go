// Package pricing implements the branch-count subscription pricing engine.
// Price is driven by a single variable: the number of active branches under
// a brand. The branch count is always an explicit parameter; this package
// never reaches out to the registry or any other collaborator.
package pricing

import (
	"github.com/shopspring/decimal"

	"nava-ops/core/types"
	"nava-ops/internal/errors"
)

// Config describes one subscription plan. It is immutable once loaded;
// the calculator only ever reads it.
type Config struct {
	// PlanName identifies the plan in the catalog
	PlanName string `json:"plan_name"`

	// CurrencyCode is the ISO 4217 currency of all plan prices
	CurrencyCode types.Currency `json:"currency_code"`

	// BasePriceMonthly is the monthly price of the first branch
	BasePriceMonthly decimal.Decimal `json:"base_price_monthly"`

	// AdditionalBranchPriceMonthly is the monthly price of each branch beyond the first
	AdditionalBranchPriceMonthly decimal.Decimal `json:"additional_branch_price_monthly"`

	// YearlyDiscountPercent is the discount applied to yearly billing, in [0,100]
	YearlyDiscountPercent int `json:"yearly_discount_percent"`

	// MinBranches is the lowest branch count a brand can be priced at
	MinBranches int `json:"min_branches"`
}

// Default returns the standard plan shipped with the product.
func Default() Config {
	return Config{
		PlanName:                     "standard",
		CurrencyCode:                 types.CurrencySAR,
		BasePriceMonthly:             decimal.NewFromInt(299),
		AdditionalBranchPriceMonthly: decimal.NewFromInt(99),
		YearlyDiscountPercent:        17,
		MinBranches:                  1,
	}
}

// Validate checks the plan invariants
func (c Config) Validate() error {
	if c.BasePriceMonthly.IsNegative() {
		return errors.Newf(errors.TypeConfig, "plan %q: base price must be non-negative", c.PlanName)
	}
	if c.AdditionalBranchPriceMonthly.IsNegative() {
		return errors.Newf(errors.TypeConfig, "plan %q: additional branch price must be non-negative", c.PlanName)
	}
	if c.YearlyDiscountPercent < 0 || c.YearlyDiscountPercent > 100 {
		return errors.Newf(errors.TypeConfig, "plan %q: yearly discount must be in [0,100], got %d", c.PlanName, c.YearlyDiscountPercent)
	}
	if c.MinBranches < 1 {
		return errors.Newf(errors.TypeConfig, "plan %q: min branches must be at least 1, got %d", c.PlanName, c.MinBranches)
	}
	return nil
}

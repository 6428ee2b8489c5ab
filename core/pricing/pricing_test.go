// Package pricing - Pricing engine tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func standardCalculator() *Calculator {
	return NewCalculator(Default())
}

// TestMonthlyPriceFormula verifies monthly = base + (count-1) * perBranch
func TestMonthlyPriceFormula(t *testing.T) {
	calc := standardCalculator()
	base := decimal.NewFromInt(299)
	perBranch := decimal.NewFromInt(99)

	for b := 1; b <= 50; b++ {
		want := base.Add(perBranch.Mul(decimal.NewFromInt(int64(b - 1))))
		got := calc.MonthlyPrice(b)
		if !got.Equal(want) {
			t.Errorf("MonthlyPrice(%d) = %s, want %s", b, got, want)
		}
		if got.LessThan(base) {
			t.Errorf("MonthlyPrice(%d) = %s fell below the base price %s", b, got, base)
		}
	}
}

// TestMonthlyPriceClamping verifies counts below the minimum price as the minimum
func TestMonthlyPriceClamping(t *testing.T) {
	calc := standardCalculator()
	floor := calc.MonthlyPrice(calc.Config().MinBranches)

	for _, b := range []int{-10, -1, 0} {
		got := calc.MonthlyPrice(b)
		if !got.Equal(floor) {
			t.Errorf("MonthlyPrice(%d) = %s, want clamped price %s", b, got, floor)
		}
	}
}

// TestYearlyPrice verifies yearly = monthly * 12 * (1 - discount/100)
func TestYearlyPrice(t *testing.T) {
	calc := standardCalculator()

	for _, b := range []int{1, 2, 5, 13} {
		monthly := calc.MonthlyPrice(b)
		want := monthly.Mul(decimal.NewFromInt(12)).Mul(decimal.RequireFromString("0.83"))
		got := calc.YearlyPrice(b)
		if !got.Equal(want) {
			t.Errorf("YearlyPrice(%d) = %s, want %s", b, got, want)
		}
	}
}

// TestYearlyPriceDiscountOutOfRangePanics proves the [0,100] contract is enforced
func TestYearlyPriceDiscountOutOfRangePanics(t *testing.T) {
	calc := standardCalculator()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for discount outside [0,100], but no panic occurred")
		}
		t.Logf("correctly panicked: %v", r)
	}()
	calc.YearlyPriceWithDiscount(3, decimal.NewFromInt(101))
}

// TestBreakdownScenario checks the standard plan against known invoice figures
func TestBreakdownScenario(t *testing.T) {
	calc := standardCalculator()

	one := calc.Breakdown(1)
	if got := one.MonthlyTotal.String(); got != "299" {
		t.Errorf("Breakdown(1).MonthlyTotal = %s, want 299", got)
	}
	if got := one.YearlyTotal.String(); got != "2978.04" {
		t.Errorf("Breakdown(1).YearlyTotal = %s, want 2978.04", got)
	}
	if one.AdditionalBranches != 0 {
		t.Errorf("Breakdown(1).AdditionalBranches = %d, want 0", one.AdditionalBranches)
	}

	five := calc.Breakdown(5)
	if got := five.MonthlyTotal.String(); got != "695" {
		t.Errorf("Breakdown(5).MonthlyTotal = %s, want 695", got)
	}
	if got := five.YearlyTotal.String(); got != "6922.2" {
		t.Errorf("Breakdown(5).YearlyTotal = %s, want 6922.2", got)
	}
	if five.AdditionalBranches != 4 {
		t.Errorf("Breakdown(5).AdditionalBranches = %d, want 4", five.AdditionalBranches)
	}
	if got := five.AdditionalBranchCost.String(); got != "396" {
		t.Errorf("Breakdown(5).AdditionalBranchCost = %s, want 396", got)
	}
	if got := five.PerBranchMonthly.String(); got != "139" {
		t.Errorf("Breakdown(5).PerBranchMonthly = %s, want 139", got)
	}
}

// TestBreakdownSavingsInvariant verifies savings = monthly*12 - yearly and is
// non-negative whenever a discount applies
func TestBreakdownSavingsInvariant(t *testing.T) {
	calc := standardCalculator()

	for b := 1; b <= 20; b++ {
		bd := calc.Breakdown(b)
		full := calc.MonthlyPrice(b).Mul(decimal.NewFromInt(12))
		want := full.Sub(calc.YearlyPrice(b)).Round(2)
		if !bd.YearlySavings.Equal(want) {
			t.Errorf("Breakdown(%d).YearlySavings = %s, want %s", b, bd.YearlySavings, want)
		}
		if bd.YearlySavings.IsNegative() {
			t.Errorf("Breakdown(%d).YearlySavings = %s is negative", b, bd.YearlySavings)
		}
	}
}

// TestBreakdownClampsBranchCount verifies the reported count is the priced count
func TestBreakdownClampsBranchCount(t *testing.T) {
	calc := standardCalculator()
	bd := calc.Breakdown(0)
	if bd.BranchCount != 1 {
		t.Errorf("Breakdown(0).BranchCount = %d, want 1", bd.BranchCount)
	}
	if !bd.MonthlyTotal.Equal(decimal.NewFromInt(299)) {
		t.Errorf("Breakdown(0).MonthlyTotal = %s, want 299", bd.MonthlyTotal)
	}
}

// TestValidateBranchCount checks the validator result values
func TestValidateBranchCount(t *testing.T) {
	calc := standardCalculator()

	if v := calc.ValidateBranchCount(0); v.IsValid || v.Error == "" {
		t.Errorf("ValidateBranchCount(0) = %+v, want invalid with a reason", v)
	}
	if v := calc.ValidateBranchCount(1); !v.IsValid || v.Error != "" {
		t.Errorf("ValidateBranchCount(1) = %+v, want valid with no error", v)
	}
	if v := calc.ValidateBranchCount(40); !v.IsValid {
		t.Errorf("ValidateBranchCount(40) = %+v, want valid", v)
	}
}

// TestConfigValidate checks plan invariant enforcement
func TestConfigValidate(t *testing.T) {
	good := Default()
	if err := good.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}

	neg := Default()
	neg.BasePriceMonthly = decimal.NewFromInt(-1)
	if err := neg.Validate(); err == nil {
		t.Error("negative base price passed validation")
	}

	disc := Default()
	disc.YearlyDiscountPercent = 101
	if err := disc.Validate(); err == nil {
		t.Error("out-of-range discount passed validation")
	}

	min := Default()
	min.MinBranches = 0
	if err := min.Validate(); err == nil {
		t.Error("zero min branches passed validation")
	}
}

const testCatalog = `
plan "legacy" {
  currency                        = "SAR"
  base_price_monthly              = "249"
  additional_branch_price_monthly = "89"
  yearly_discount_percent         = 10
  active                          = false
}

plan "standard" {
  currency                        = "SAR"
  base_price_monthly              = "299"
  additional_branch_price_monthly = "99"
  yearly_discount_percent         = 17
  min_branches                    = 1
  active                          = true
}
`

// TestParseCatalog verifies the active plan is selected from the catalog
func TestParseCatalog(t *testing.T) {
	cfg, err := ParseCatalog("plans.hcl", []byte(testCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	if cfg.PlanName != "standard" {
		t.Errorf("active plan = %q, want %q", cfg.PlanName, "standard")
	}
	if !cfg.BasePriceMonthly.Equal(decimal.NewFromInt(299)) {
		t.Errorf("base price = %s, want 299", cfg.BasePriceMonthly)
	}
	if cfg.MinBranches != 1 {
		t.Errorf("min branches = %d, want 1", cfg.MinBranches)
	}
}

// TestParseCatalogRejectsAmbiguousActive verifies the exactly-one-active rule
func TestParseCatalogRejectsAmbiguousActive(t *testing.T) {
	twoActive := `
plan "a" {
  currency                        = "SAR"
  base_price_monthly              = "100"
  additional_branch_price_monthly = "10"
  yearly_discount_percent         = 0
  active                          = true
}

plan "b" {
  currency                        = "SAR"
  base_price_monthly              = "200"
  additional_branch_price_monthly = "20"
  yearly_discount_percent         = 0
  active                          = true
}
`
	if _, err := ParseCatalog("plans.hcl", []byte(twoActive)); err == nil {
		t.Error("catalog with two active plans was accepted")
	}

	noneActive := `
plan "a" {
  currency                        = "SAR"
  base_price_monthly              = "100"
  additional_branch_price_monthly = "10"
  yearly_discount_percent         = 0
  active                          = false
}
`
	if _, err := ParseCatalog("plans.hcl", []byte(noneActive)); err == nil {
		t.Error("catalog with no active plan was accepted")
	}
}

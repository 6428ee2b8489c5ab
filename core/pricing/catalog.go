// Package pricing - Plan catalog loading
//
// Plans are declared in an HCL catalog file. Several plans may exist
// (historical rows stay in the file, inactive), but exactly one must be
// marked active; the loader rejects anything else.
package pricing

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"nava-ops/core/types"
	"nava-ops/internal/errors"
)

// catalogFile is the HCL schema of a plan catalog
type catalogFile struct {
	Plans []planBlock `hcl:"plan,block"`
}

// planBlock is one plan declaration. Prices are strings so the catalog
// carries exact decimals, not floats.
type planBlock struct {
	Name                  string `hcl:"name,label"`
	Currency              string `hcl:"currency"`
	BasePriceMonthly      string `hcl:"base_price_monthly"`
	AdditionalBranchPrice string `hcl:"additional_branch_price_monthly"`
	YearlyDiscountPercent int    `hcl:"yearly_discount_percent"`
	MinBranches           *int   `hcl:"min_branches"`
	Active                bool   `hcl:"active"`
}

// LoadCatalog reads a plan catalog file and returns the active plan
func LoadCatalog(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Catalog("reading plan catalog", err)
	}
	return ParseCatalog(path, src)
}

// ParseCatalog parses plan catalog source and returns the active plan
func ParseCatalog(filename string, src []byte) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, errors.Catalog("parsing plan catalog", diags)
	}

	var catalog catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &catalog); diags.HasErrors() {
		return Config{}, errors.Catalog("decoding plan catalog", diags)
	}

	if len(catalog.Plans) == 0 {
		return Config{}, errors.New(errors.TypeCatalog, "plan catalog declares no plans")
	}

	var active *planBlock
	for i := range catalog.Plans {
		if !catalog.Plans[i].Active {
			continue
		}
		if active != nil {
			return Config{}, errors.Newf(errors.TypeCatalog,
				"plan catalog declares more than one active plan: %q and %q", active.Name, catalog.Plans[i].Name)
		}
		active = &catalog.Plans[i]
	}
	if active == nil {
		return Config{}, errors.New(errors.TypeCatalog, "plan catalog declares no active plan")
	}

	return active.toConfig()
}

// toConfig converts a plan block into a validated Config
func (p *planBlock) toConfig() (Config, error) {
	base, err := decimal.NewFromString(p.BasePriceMonthly)
	if err != nil {
		return Config{}, errors.Wrapf(errors.TypeCatalog, err, "plan %q: invalid base price %q", p.Name, p.BasePriceMonthly)
	}
	additional, err := decimal.NewFromString(p.AdditionalBranchPrice)
	if err != nil {
		return Config{}, errors.Wrapf(errors.TypeCatalog, err, "plan %q: invalid additional branch price %q", p.Name, p.AdditionalBranchPrice)
	}

	minBranches := 1
	if p.MinBranches != nil {
		minBranches = *p.MinBranches
	}

	cfg := Config{
		PlanName:                     p.Name,
		CurrencyCode:                 types.Currency(p.Currency),
		BasePriceMonthly:             base,
		AdditionalBranchPriceMonthly: additional,
		YearlyDiscountPercent:        p.YearlyDiscountPercent,
		MinBranches:                  minBranches,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

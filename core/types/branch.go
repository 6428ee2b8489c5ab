// Package types - Branch and per-branch statistics types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch is one physical business location belonging to exactly one brand
type Branch struct {
	// ID uniquely identifies the branch
	ID string `json:"id"`

	// BrandID is the owning brand (tenant)
	BrandID string `json:"brand_id"`

	// Name is the display name
	Name string `json:"name"`

	// Location is a free-form address or city label
	Location string `json:"location"`

	// Active indicates whether the branch counts toward the subscription
	Active bool `json:"active"`

	// CreatedAt is when the branch was registered
	CreatedAt time.Time `json:"created_at"`
}

// BranchMetric is one branch's statistics for a reporting period.
// Supplied by an external statistics provider; the core only reads it.
type BranchMetric struct {
	// BranchID links to the branch
	BranchID string `json:"branch_id"`

	// Name is the branch display name
	Name string `json:"name"`

	// Location is the branch location label
	Location string `json:"location"`

	// Revenue is the period revenue
	Revenue decimal.Decimal `json:"revenue"`

	// Orders is the period order count
	Orders int64 `json:"orders"`

	// GrowthPercent is revenue growth versus the prior period
	GrowthPercent decimal.Decimal `json:"growth_percent"`
}

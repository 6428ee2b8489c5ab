// Package api - Request and response types
package api

import (
	"nava-ops/core/diff"
	"nava-ops/core/metrics"
	"nava-ops/core/pricing"
)

// QuoteRequest asks for a pricing breakdown. Either a literal branch count
// or a brand ID (resolved through the registry) must be supplied.
type QuoteRequest struct {
	// BranchCount prices an explicit count
	BranchCount *int `json:"branch_count,omitempty"`

	// BrandID prices the brand's current active branch count
	BrandID string `json:"brand_id,omitempty"`
}

// QuoteResponse is the pricing breakdown plus validation state
type QuoteResponse struct {
	// Breakdown is the full pricing result
	Breakdown pricing.Breakdown `json:"breakdown"`

	// Validation reports whether the requested count met the plan minimum
	Validation pricing.Validation `json:"validation"`

	// RequestedBranchCount is the count before clamping
	RequestedBranchCount int `json:"requested_branch_count"`
}

// DiffRequest asks for a branch count change preview
type DiffRequest struct {
	// CurrentBranchCount is the count before the change; resolved from
	// BrandID when nil
	CurrentBranchCount *int `json:"current_branch_count,omitempty"`

	// NewBranchCount is the count after the change
	NewBranchCount int `json:"new_branch_count"`

	// BrandID resolves the current count from the registry
	BrandID string `json:"brand_id,omitempty"`
}

// SummaryRequest asks for a brand metrics summary
type SummaryRequest struct {
	// BrandID identifies the brand to summarize
	BrandID string `json:"brand_id"`
}

// SummaryResponse is the brand summary plus partial-fetch accounting
type SummaryResponse struct {
	// Summary is the aggregated brand metrics
	Summary *metrics.Summary `json:"summary"`

	// BranchesSkipped is how many branches failed to fetch and were excluded
	BranchesSkipped int `json:"branches_skipped"`
}

// DiffResponse wraps the diff result
type DiffResponse struct {
	Diff *diff.Result `json:"diff"`
}

// CreateBranchRequest registers a new branch
type CreateBranchRequest struct {
	BrandID  string `json:"brand_id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Package statistics is the per-branch statistics collaborator. It fetches
// each branch's reporting-period metrics and hands completed values to the
// core aggregator. Retry and backoff do not live here; a failed branch is
// simply skipped.
package statistics

import (
	"context"

	"nava-ops/core/types"
)

// Provider fetches one branch's metrics for the current reporting period
type Provider interface {
	// BranchMetrics returns the metrics of a single branch
	BranchMetrics(ctx context.Context, branch *types.Branch) (types.BranchMetric, error)

	// Close releases backend resources
	Close() error
}

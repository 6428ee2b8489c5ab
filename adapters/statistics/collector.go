// Package statistics - Concurrent metrics collection
package statistics

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"nava-ops/core/metrics"
	"nava-ops/core/types"
	"nava-ops/internal/logging"
)

// Collector fans per-branch metric fetches out to the provider and waits
// for all of them to settle. A branch whose fetch fails is logged and
// excluded from the result; the rest still count.
type Collector struct {
	provider Provider
	log      *zap.Logger
}

// NewCollector creates a collector over the given provider
func NewCollector(provider Provider) *Collector {
	return &Collector{
		provider: provider,
		log:      logging.With(zap.String("component", "statistics")),
	}
}

// Collect fetches metrics for all branches concurrently and returns the
// fetch outcomes in input order.
func (c *Collector) Collect(ctx context.Context, branches []*types.Branch) []metrics.FetchResult {
	results := make([]metrics.FetchResult, len(branches))

	var wg sync.WaitGroup
	for i, branch := range branches {
		wg.Add(1)
		go func(i int, branch *types.Branch) {
			defer wg.Done()
			m, err := c.provider.BranchMetrics(ctx, branch)
			if err != nil {
				c.log.Warn("skipping branch with failed metrics fetch",
					zap.String("branch_id", branch.ID),
					zap.String("branch", branch.Name),
					zap.Error(err))
				results[i] = metrics.FetchResult{Err: err}
				return
			}
			results[i] = metrics.FetchResult{Metric: m}
		}(i, branch)
	}
	wg.Wait()

	return results
}

// Summarize collects all branch metrics and reduces them into a brand
// summary. Returns the summary and how many branches were skipped.
func (c *Collector) Summarize(ctx context.Context, branches []*types.Branch) (*metrics.Summary, int) {
	summary, skipped := metrics.AggregateResults(c.Collect(ctx, branches))
	if skipped > 0 {
		c.log.Warn("brand summary is partial",
			zap.Int("branches_skipped", skipped),
			zap.Int("branches_included", summary.BranchesIncluded))
	}
	return summary, skipped
}

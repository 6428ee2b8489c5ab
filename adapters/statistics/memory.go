// Package statistics - In-memory provider
package statistics

import (
	"context"
	"sync"

	"nava-ops/core/types"
	"nava-ops/internal/errors"
)

// MemoryProvider serves metrics from an in-memory map, for tests and demos
type MemoryProvider struct {
	mu      sync.RWMutex
	metrics map[string]types.BranchMetric
}

// NewMemoryProvider creates an empty in-memory provider
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{metrics: make(map[string]types.BranchMetric)}
}

// Put stores a branch's metrics
func (p *MemoryProvider) Put(m types.BranchMetric) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metrics[m.BranchID] = m
}

// BranchMetrics returns the stored metrics for a branch
func (p *MemoryProvider) BranchMetrics(ctx context.Context, branch *types.Branch) (types.BranchMetric, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, ok := p.metrics[branch.ID]
	if !ok {
		return types.BranchMetric{}, errors.NotFound("branch metrics", branch.ID)
	}
	return m, nil
}

// Close is a no-op for the in-memory provider
func (p *MemoryProvider) Close() error {
	return nil
}

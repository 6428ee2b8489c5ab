// Package registry - In-memory backend
package registry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nava-ops/core/types"
	"nava-ops/internal/errors"
)

// MemoryRegistry is an in-memory Registry for tests and single-process use
type MemoryRegistry struct {
	mu       sync.RWMutex
	branches map[string]*types.Branch
	hub      *Hub
}

// NewMemoryRegistry creates an empty in-memory registry. The hub may be
// nil when no change feed is needed.
func NewMemoryRegistry(hub *Hub) *MemoryRegistry {
	return &MemoryRegistry{
		branches: make(map[string]*types.Branch),
		hub:      hub,
	}
}

// Create registers a new active branch
func (r *MemoryRegistry) Create(ctx context.Context, brandID, name, location string) (*types.Branch, error) {
	if brandID == "" || name == "" {
		return nil, errors.Input("brand id and branch name are required")
	}

	branch := &types.Branch{
		ID:        uuid.New().String(),
		BrandID:   brandID,
		Name:      name,
		Location:  location,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.branches[branch.ID] = branch
	r.mu.Unlock()

	r.publish(BranchCreated, branch)
	return branch, nil
}

// Get retrieves a branch by ID
func (r *MemoryRegistry) Get(ctx context.Context, id string) (*types.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	branch, ok := r.branches[id]
	if !ok {
		return nil, errors.NotFound("branch", id)
	}
	clone := *branch
	return &clone, nil
}

// List returns a brand's branches, newest first
func (r *MemoryRegistry) List(ctx context.Context, brandID string) ([]*types.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*types.Branch, 0)
	for _, branch := range r.branches {
		if branch.BrandID != brandID {
			continue
		}
		clone := *branch
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a branch
func (r *MemoryRegistry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	branch, ok := r.branches[id]
	if ok {
		delete(r.branches, id)
	}
	r.mu.Unlock()

	if !ok {
		return errors.NotFound("branch", id)
	}
	r.publish(BranchDeleted, branch)
	return nil
}

// CountActive returns the number of active branches of a brand
func (r *MemoryRegistry) CountActive(ctx context.Context, brandID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, branch := range r.branches {
		if branch.BrandID == brandID && branch.Active {
			count++
		}
	}
	return count, nil
}

// Close is a no-op for the in-memory backend
func (r *MemoryRegistry) Close() error {
	return nil
}

func (r *MemoryRegistry) publish(t EventType, branch *types.Branch) {
	if r.hub == nil {
		return
	}
	clone := *branch
	r.hub.Publish(Event{Type: t, Branch: &clone, At: time.Now().UTC()})
}

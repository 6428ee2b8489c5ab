// Package registry is the branch registry collaborator. It owns branch
// records and is the single source of the branch count the pricing engine
// is called with. The engine itself never touches this package; callers
// read a count here and pass it in as a plain integer.
package registry

import (
	"context"

	"nava-ops/core/types"
)

// Registry manages branch records for brands
type Registry interface {
	// Create registers a new active branch under a brand
	Create(ctx context.Context, brandID, name, location string) (*types.Branch, error)

	// Get retrieves a branch by ID
	Get(ctx context.Context, id string) (*types.Branch, error)

	// List returns all branches of a brand, newest first
	List(ctx context.Context, brandID string) ([]*types.Branch, error)

	// Delete removes a branch
	Delete(ctx context.Context, id string) error

	// CountActive returns the number of active branches of a brand
	CountActive(ctx context.Context, brandID string) (int, error)

	// Close releases backend resources
	Close() error
}

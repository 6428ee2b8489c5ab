// Package registry - PostgreSQL backend
package registry

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"nava-ops/core/types"
	"nava-ops/internal/errors"
)

// PostgresRegistry is a Registry backed by PostgreSQL
type PostgresRegistry struct {
	db  *sql.DB
	hub *Hub
}

// NewPostgresRegistry opens a connection to the branch database.
// The hub may be nil when no change feed is needed.
func NewPostgresRegistry(dsn string, hub *Hub) (*PostgresRegistry, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Storage("opening branch database", err)
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Storage("pinging branch database", err)
	}
	return &PostgresRegistry{db: db, hub: hub}, nil
}

// Create registers a new active branch
func (r *PostgresRegistry) Create(ctx context.Context, brandID, name, location string) (*types.Branch, error) {
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

	const query = `
		INSERT INTO branches (id, brand_id, name, location, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query,
		branch.ID, branch.BrandID, branch.Name, branch.Location, branch.Active, branch.CreatedAt); err != nil {
		return nil, errors.Storage("inserting branch", err)
	}

	r.publish(BranchCreated, branch)
	return branch, nil
}

// Get retrieves a branch by ID
func (r *PostgresRegistry) Get(ctx context.Context, id string) (*types.Branch, error) {
	const query = `
		SELECT id, brand_id, name, location, active, created_at
		FROM branches WHERE id = $1`

	branch := &types.Branch{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&branch.ID, &branch.BrandID, &branch.Name, &branch.Location, &branch.Active, &branch.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("branch", id)
	}
	if err != nil {
		return nil, errors.Storage("querying branch", err)
	}
	return branch, nil
}

// List returns a brand's branches, newest first
func (r *PostgresRegistry) List(ctx context.Context, brandID string) ([]*types.Branch, error) {
	const query = `
		SELECT id, brand_id, name, location, active, created_at
		FROM branches WHERE brand_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, errors.Storage("listing branches", err)
	}
	defer rows.Close()

	branches := make([]*types.Branch, 0)
	for rows.Next() {
		branch := &types.Branch{}
		if err := rows.Scan(
			&branch.ID, &branch.BrandID, &branch.Name, &branch.Location, &branch.Active, &branch.CreatedAt); err != nil {
			return nil, errors.Storage("scanning branch row", err)
		}
		branches = append(branches, branch)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("iterating branch rows", err)
	}
	return branches, nil
}

// Delete removes a branch
func (r *PostgresRegistry) Delete(ctx context.Context, id string) error {
	branch, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM branches WHERE id = $1`, id); err != nil {
		return errors.Storage("deleting branch", err)
	}

	r.publish(BranchDeleted, branch)
	return nil
}

// CountActive returns the number of active branches of a brand
func (r *PostgresRegistry) CountActive(ctx context.Context, brandID string) (int, error) {
	const query = `SELECT COUNT(*) FROM branches WHERE brand_id = $1 AND active`

	var count int
	if err := r.db.QueryRowContext(ctx, query, brandID).Scan(&count); err != nil {
		return 0, errors.Storage("counting branches", err)
	}
	return count, nil
}

// Close closes the database connection
func (r *PostgresRegistry) Close() error {
	return r.db.Close()
}

func (r *PostgresRegistry) publish(t EventType, branch *types.Branch) {
	if r.hub == nil {
		return
	}
	r.hub.Publish(Event{Type: t, Branch: branch, At: time.Now().UTC()})
}

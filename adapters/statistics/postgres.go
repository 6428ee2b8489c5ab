// Package statistics - PostgreSQL provider
//
// Reads raw order rows and derives the period metrics per branch. Growth is
// period revenue against the immediately preceding period of the same
// length.
package statistics

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"nava-ops/core/types"
	"nava-ops/internal/errors"
)

// DefaultPeriod is the reporting window when none is configured
const DefaultPeriod = 30 * 24 * time.Hour

// PostgresProvider derives branch metrics from an orders table
type PostgresProvider struct {
	db     *sql.DB
	period time.Duration

	// now is swappable for tests
	now func() time.Time
}

// NewPostgresProvider opens a connection to the orders database
func NewPostgresProvider(dsn string, period time.Duration) (*PostgresProvider, error) {
	if period <= 0 {
		period = DefaultPeriod
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Storage("opening orders database", err)
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Storage("pinging orders database", err)
	}
	return &PostgresProvider{db: db, period: period, now: time.Now}, nil
}

// BranchMetrics derives one branch's metrics for the current period
func (p *PostgresProvider) BranchMetrics(ctx context.Context, branch *types.Branch) (types.BranchMetric, error) {
	end := p.now().UTC()
	start := end.Add(-p.period)
	prevStart := start.Add(-p.period)

	revenue, orders, err := p.periodTotals(ctx, branch.ID, start, end)
	if err != nil {
		return types.BranchMetric{}, err
	}
	prevRevenue, _, err := p.periodTotals(ctx, branch.ID, prevStart, start)
	if err != nil {
		return types.BranchMetric{}, err
	}

	// zero prior revenue means growth is undefined; report 0
	growth := decimal.Zero
	if prevRevenue.IsPositive() {
		growth = revenue.Sub(prevRevenue).Div(prevRevenue).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return types.BranchMetric{
		BranchID:      branch.ID,
		Name:          branch.Name,
		Location:      branch.Location,
		Revenue:       revenue,
		Orders:        orders,
		GrowthPercent: growth,
	}, nil
}

func (p *PostgresProvider) periodTotals(ctx context.Context, branchID string, start, end time.Time) (decimal.Decimal, int64, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0)::text, COUNT(*)
		FROM orders
		WHERE branch_id = $1 AND created_at >= $2 AND created_at < $3`

	var revenueText string
	var orders int64
	if err := p.db.QueryRowContext(ctx, query, branchID, start, end).Scan(&revenueText, &orders); err != nil {
		return decimal.Zero, 0, errors.Stats("querying order totals", err).WithContext("branch_id", branchID)
	}

	revenue, err := decimal.NewFromString(revenueText)
	if err != nil {
		return decimal.Zero, 0, errors.Stats("parsing revenue total", err).WithContext("branch_id", branchID)
	}
	return revenue, orders, nil
}

// Close closes the database connection
func (p *PostgresProvider) Close() error {
	return p.db.Close()
}

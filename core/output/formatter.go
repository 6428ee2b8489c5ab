// Package output renders pricing and analytics results for humans and
// machines. The core hands over raw decimals; everything locale-shaped
// (currency symbols, digit grouping) happens here and nowhere deeper.
package output

import (
	"io"
	"time"

	"nava-ops/core/diff"
	"nava-ops/core/metrics"
	"nava-ops/core/pricing"
	"nava-ops/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is the complete renderable result of one pricing/analytics run
type Report struct {
	// PlanName is the plan the figures were computed against
	PlanName string `json:"plan_name"`

	// Breakdown is the pricing breakdown
	Breakdown pricing.Breakdown `json:"breakdown"`

	// Diff is an optional branch count change preview
	Diff *diff.Result `json:"diff,omitempty"`

	// Summary is an optional brand metrics summary
	Summary *metrics.Summary `json:"summary,omitempty"`

	// BranchesSkipped is how many branches were excluded from the summary
	BranchesSkipped int `json:"branches_skipped,omitempty"`

	// GeneratedAt is when the report was produced
	GeneratedAt time.Time `json:"generated_at"`
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}

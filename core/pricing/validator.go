// Package pricing - Branch count validation
package pricing

import "fmt"

// Validation is the result of a branch count check. It is a value, never
// an error: callers decide whether an invalid count blocks an action or
// merely warns.
type Validation struct {
	// IsValid reports whether the count satisfies the plan minimum
	IsValid bool `json:"is_valid"`

	// Error is the human-readable reason when IsValid is false
	Error string `json:"error,omitempty"`
}

// ValidateBranchCount checks a branch count against the plan minimum
func (c *Calculator) ValidateBranchCount(branchCount int) Validation {
	if branchCount < c.cfg.MinBranches {
		return Validation{
			IsValid: false,
			Error:   fmt.Sprintf("branch count %d is below the plan minimum of %d", branchCount, c.cfg.MinBranches),
		}
	}
	return Validation{IsValid: true}
}

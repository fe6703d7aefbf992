// Package types provides type definitions for structured data used throughout the cad-automation system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// ValidationResult represents the outcome of a single compliance validator run.
// It is immutable after construction: NewValidationResult rejects a score
// outside [0, 1] or inconsistent check counts.
type ValidationResult struct {
	Passed          bool     `json:"passed"`
	Score           float64  `json:"score"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	ChecksPerformed int      `json:"checks_performed"`
	ChecksPassed    int      `json:"checks_passed"`
}

// NewValidationResult builds a ValidationResult, enforcing its invariants.
func NewValidationResult(passed bool, score float64, errors, warnings []string, checksPerformed, checksPassed int) (*ValidationResult, error) {
	if score < 0.0 || score > 1.0 {
		return nil, fmt.Errorf("score must be between 0.0 and 1.0, got %g", score)
	}
	if checksPerformed < 0 || checksPassed < 0 {
		return nil, fmt.Errorf("check counts must be non-negative, got %d performed / %d passed", checksPerformed, checksPassed)
	}
	if checksPassed > checksPerformed {
		return nil, fmt.Errorf("checks_passed (%d) cannot exceed checks_performed (%d)", checksPassed, checksPerformed)
	}
	return &ValidationResult{
		Passed:          passed,
		Score:           score,
		Errors:          errors,
		Warnings:        warnings,
		ChecksPerformed: checksPerformed,
		ChecksPassed:    checksPassed,
	}, nil
}

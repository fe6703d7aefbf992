// Package compliance provides rule-based validation of 2D drawings against a
// subset of the AS 1100 technical drawing standard. Each validator inspects a
// drafting document independently and produces a weighted pass/fail result;
// aggregation across validators is performed by Run.
package compliance

import (
	"fmt"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

// Validator is a single compliance rule checker. Implementations are
// stateless across invocations and never mutate the document they inspect.
type Validator interface {
	// Validate checks the document against one AS 1100 rule set. Rule
	// violations are reported inside the result, never as an error; the
	// error return is reserved for malformed validator input.
	Validate(doc *drafting.Document) (*types.ValidationResult, error)

	Weight() float64
	Name() string
	Standard() string
}

// Rule carries the configuration shared by all validators: the rubric weight,
// a human-readable name, and the AS 1100 standard section it enforces.
type Rule struct {
	weight   float64
	name     string
	standard string
}

// NewRule builds a Rule, rejecting a weight outside [0, 1].
func NewRule(weight float64, name, standard string) (Rule, error) {
	if weight < 0.0 || weight > 1.0 {
		return Rule{}, fmt.Errorf("weight must be between 0.0 and 1.0, got %g", weight)
	}
	return Rule{weight: weight, name: name, standard: standard}, nil
}

// Weight returns the rubric weight of the rule.
func (r Rule) Weight() float64 { return r.weight }

// Name returns the human-readable rule name.
func (r Rule) Name() string { return r.name }

// Standard returns the AS 1100 standard section the rule enforces.
func (r Rule) Standard() string { return r.standard }

func (r Rule) String() string {
	return fmt.Sprintf("%s(weight=%g, standard=%q)", r.name, r.weight, r.standard)
}

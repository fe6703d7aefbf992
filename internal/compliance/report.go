// Package compliance provides rule-based validation of 2D drawings against a
// subset of the AS 1100 technical drawing standard.
package compliance

import (
	"fmt"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

// RuleResult pairs a validator's identity with its outcome. Err is set when
// the validator itself failed or panicked; Result is nil in that case.
type RuleResult struct {
	Name     string
	Standard string
	Weight   float64
	Result   *types.ValidationResult
	Err      error
}

// Report aggregates the outcomes of a set of validators over one document.
// Score is the weight-normalized compliance score across the rules that
// produced a result; Passed requires every rule to have run and passed.
type Report struct {
	Rules  []RuleResult
	Score  float64
	Passed bool
}

// Run executes each validator against the document. Validators are isolated
// from each other: a failure or panic in one is recorded in its RuleResult
// and does not prevent the others from running.
func Run(doc *drafting.Document, validators ...Validator) *Report {
	report := &Report{Passed: true}

	var weightSum, weighted float64
	for _, v := range validators {
		rr := RuleResult{Name: v.Name(), Standard: v.Standard(), Weight: v.Weight()}
		rr.Result, rr.Err = runIsolated(v, doc)

		if rr.Err != nil || rr.Result == nil || !rr.Result.Passed {
			report.Passed = false
		}
		if rr.Result != nil {
			weightSum += rr.Weight
			weighted += rr.Weight * rr.Result.Score
		}
		report.Rules = append(report.Rules, rr)
	}

	if weightSum > 0 {
		report.Score = weighted / weightSum
	}
	return report
}

// runIsolated invokes a single validator, converting a panic into an error.
func runIsolated(v Validator, doc *drafting.Document) (result *types.ValidationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("validator %s panicked: %v", v.Name(), r)
		}
	}()
	return v.Validate(doc)
}

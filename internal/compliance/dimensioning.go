// Package compliance provides rule-based validation of 2D drawings against a
// subset of the AS 1100 technical drawing standard.
package compliance

import (
	"fmt"
	"sort"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

// AS 1100.101 dimensioning standards.
const (
	minTextHeightMM = 3.5
	// Arrow size should be 3x the 0.25mm dimension line width.
	standardLineWidthMM = 0.25
	standardArrowSizeMM = 0.75

	// dimTolerance is the allowed deviation for text height and arrow size.
	dimTolerance = 0.5 // mm
)

// Dimensioning validates AS 1100.101 dimensioning requirements: minimum
// dimension text height, arrowhead size, and decimal place consistency.
type Dimensioning struct {
	Rule
}

// NewDimensioning returns the dimensioning validator, weighted at 25% of the
// overall compliance rubric.
func NewDimensioning() *Dimensioning {
	rule, err := NewRule(0.25, "Dimensioning Validator", "AS 1100.101")
	if err != nil {
		panic(err) // static weight, cannot fail
	}
	return &Dimensioning{Rule: rule}
}

// Validate implements Validator. A drawing without dimension entities passes
// trivially: absence of dimensions is not itself a violation.
func (v *Dimensioning) Validate(doc *drafting.Document) (*types.ValidationResult, error) {
	var errs, warnings []string
	performed, passed := 0, 0

	var dims []*drafting.LinearDimension
	for _, e := range doc.Query("DIMENSION") {
		if dim, ok := e.(*drafting.LinearDimension); ok {
			dims = append(dims, dim)
		}
	}

	if len(dims) == 0 {
		warnings = append(warnings, "No dimension entities found - cannot validate dimensioning standards")
		return types.NewValidationResult(true, 1.0, errs, warnings, 1, 1)
	}

	// Check 1: dimension text height. Undersized text is a hard error.
	performed++
	if violations := undersizedTextHeights(dims); len(violations) > 0 {
		errs = append(errs, fmt.Sprintf(
			"Dimension text height too small: %d dimensions below %gmm minimum (avg: %.2fmm). "+
				"AS 1100.101 requires minimum %gmm text height.",
			len(violations), minTextHeightMM, mean(violations), minTextHeightMM))
	} else {
		passed++
		warnings = append(warnings, fmt.Sprintf(
			"Dimension text height: %d dimensions checked, all meet %gmm minimum",
			len(dims), minTextHeightMM))
	}

	// Check 2: arrow size. Deviation is advisory only and never fails the
	// check.
	performed++
	passed++
	warnings = append(warnings, arrowSizeWarning(dims))

	// Check 3: decimal place consistency. Inconsistency is an advisory fail.
	performed++
	if distinct := distinctDecimalPlaces(dims); len(distinct) > 1 {
		warnings = append(warnings, fmt.Sprintf(
			"Inconsistent decimal places: %d different settings found %v. "+
				"AS 1100.101 recommends consistent decimal precision.",
			len(distinct), distinct))
	} else {
		passed++
		warnings = append(warnings, fmt.Sprintf(
			"Decimal places: consistent across %d dimensions (%d decimal places)",
			len(dims), dims[0].DecimalPlaces()))
	}

	score := float64(passed) / float64(performed)
	return types.NewValidationResult(len(errs) == 0 && score >= 0.7, score, errs, warnings, performed, passed)
}

// undersizedTextHeights returns the effective text heights that fall below
// the AS 1100 minimum, allowing the measurement tolerance.
func undersizedTextHeights(dims []*drafting.LinearDimension) []float64 {
	var violations []float64
	for _, dim := range dims {
		if h := dim.TextHeight(); h < minTextHeightMM-dimTolerance {
			violations = append(violations, h)
		}
	}
	return violations
}

// arrowSizeWarning summarizes the mean effective arrow size against the
// AS 1100 recommendation.
func arrowSizeWarning(dims []*drafting.LinearDimension) string {
	var sizes []float64
	for _, dim := range dims {
		sizes = append(sizes, dim.ArrowSize())
	}
	avg := mean(sizes)
	if absf(avg-standardArrowSizeMM) > dimTolerance {
		return fmt.Sprintf(
			"Arrow size: avg %.2fmm (expected ~%gmm for %gmm line width). "+
				"AS 1100.101 recommends arrow size = 3x line width.",
			avg, standardArrowSizeMM, standardLineWidthMM)
	}
	return fmt.Sprintf(
		"Arrow size: avg %.2fmm (%d dimensions), meets AS 1100 standard (~%gmm)",
		avg, len(sizes), standardArrowSizeMM)
}

// distinctDecimalPlaces returns the distinct effective decimal place settings
// across all dimensions, sorted ascending.
func distinctDecimalPlaces(dims []*drafting.LinearDimension) []int {
	seen := make(map[int]bool)
	var distinct []int
	for _, dim := range dims {
		if dp := dim.DecimalPlaces(); !seen[dp] {
			seen[dp] = true
			distinct = append(distinct, dp)
		}
	}
	sort.Ints(distinct)
	return distinct
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

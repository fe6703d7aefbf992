// Package compliance provides rule-based validation of 2D drawings against a
// subset of the AS 1100 technical drawing standard.
package compliance

import (
	"fmt"
	"strings"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

// AS 1100.101 border dimensions in mm.
const (
	borderLeftMM   = 20.0 // binding edge
	borderOthersMM = 10.0
)

// sheetSizeTolerance is the allowed deviation from a standard sheet size.
const sheetSizeTolerance = 1.0 // mm

// sheetSize is one AS 1100.101 standard sheet size.
type sheetSize struct {
	name          string
	width, height float64
}

// sheetSizes lists the AS 1100.101 standard sheet sizes (mm), portrait first,
// then the landscape variants. Order is significant for error messages.
var sheetSizes = []sheetSize{
	{"A0", 1189, 841},
	{"A1", 841, 594},
	{"A2", 594, 420},
	{"A3", 420, 297},
	{"A4", 297, 210},
	{"A0L", 841, 1189},
	{"A1L", 594, 841},
	{"A2L", 420, 594},
	{"A3L", 297, 420},
	{"A4L", 210, 297},
}

// SheetLayout validates AS 1100.101 sheet layout requirements: standard sheet
// size, border presence, and title block presence in the bottom-right corner.
// The border and title block checks are presence-only; exact offsets are not
// verified.
type SheetLayout struct {
	Rule
}

// NewSheetLayout returns the sheet layout validator, weighted at 15% of the
// overall compliance rubric.
func NewSheetLayout() *SheetLayout {
	rule, err := NewRule(0.15, "Sheet Layout Validator", "AS 1100.101")
	if err != nil {
		panic(err) // static weight, cannot fail
	}
	return &SheetLayout{Rule: rule}
}

// Validate implements Validator. A drawing without declared limits fails
// terminally: the sheet size cannot be determined, so no further checks run.
func (v *SheetLayout) Validate(doc *drafting.Document) (*types.ValidationResult, error) {
	var errs, warnings []string
	performed, passed := 0, 0

	limits, ok := doc.Limits()
	if !ok {
		errs = append(errs, "Drawing limits ($LIMMIN/$LIMMAX) not defined - cannot determine sheet size")
		return types.NewValidationResult(false, 0.0, errs, warnings, 1, 0)
	}
	width, height := limits.Width(), limits.Height()

	// Check 1: sheet size against the AS 1100 table.
	performed++
	if name := matchSheetSize(width, height); name != "" {
		passed++
		warnings = append(warnings, fmt.Sprintf("Sheet size: %s (%gx%gmm)", name, width, height))
	} else {
		errs = append(errs, fmt.Sprintf(
			"Invalid sheet size: %gx%gmm. Must be AS 1100 standard (A0-A4). Valid sizes: %s",
			width, height, strings.Join(sheetSizeNames(), ", ")))
	}

	// Check 2: border entities. Presence-only; absence is advisory.
	performed++
	if borders := doc.Query("LWPOLYLINE", "LINE"); len(borders) > 0 {
		passed++
	} else {
		warnings = append(warnings, fmt.Sprintf(
			"No border entities found. AS 1100.101 requires borders (%gmm left, %gmm others)",
			borderLeftMM, borderOthersMM))
	}

	// Check 3: title block text in the bottom-right region. Absence is
	// advisory.
	performed++
	if n := countTitleBlockTexts(doc, width, height); n > 0 {
		passed++
	} else {
		warnings = append(warnings,
			"Title block not found in bottom-right corner. AS 1100.101 requires title block with drawing info")
	}

	score := float64(passed) / float64(performed)
	return types.NewValidationResult(len(errs) == 0 && score >= 0.8, score, errs, warnings, performed, passed)
}

// matchSheetSize returns the name of the standard sheet size within tolerance
// of the given extents, or "" if none matches.
func matchSheetSize(width, height float64) string {
	for _, s := range sheetSizes {
		if absf(width-s.width) <= sheetSizeTolerance && absf(height-s.height) <= sheetSizeTolerance {
			return s.name
		}
	}
	return ""
}

// countTitleBlockTexts counts text entities whose insertion point lies in the
// bottom-right detection region: x >= 0.6*width, y <= 0.3*height.
func countTitleBlockTexts(doc *drafting.Document, width, height float64) int {
	regionX := width * 0.6
	regionY := height * 0.3

	count := 0
	for _, e := range doc.Query("TEXT", "MTEXT") {
		ins, ok := e.(drafting.Inserter)
		if !ok {
			continue
		}
		p := ins.InsertionPoint()
		if p.X >= regionX && p.Y <= regionY {
			count++
		}
	}
	return count
}

func sheetSizeNames() []string {
	names := make([]string, len(sheetSizes))
	for i, s := range sheetSizes {
		names[i] = s.name
	}
	return names
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

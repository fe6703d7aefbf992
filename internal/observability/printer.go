// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/compliance"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of messages to display per rule
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBracketParams outputs a human-readable summary of the parameter set.
func (p *Printer) PrintBracketParams(params *types.BracketParams) {
	if params == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type:       %s\n", strings.ToUpper(params.BracketType)))
	sb.WriteString(fmt.Sprintf("Size:       %gx%gx%gmm\n", params.Width, params.Height, params.Thickness))
	sb.WriteString(fmt.Sprintf("Holes:      %dx Ø%gmm\n", params.HoleCount, params.HoleDiameter))
	sb.WriteString(fmt.Sprintf("Material:   %s", params.Material))

	p.printBox("BRACKET PARAMETERS", sb.String())
}

// PrintReport outputs the per-rule compliance results and the weighted
// overall score.
func (p *Printer) PrintReport(report *compliance.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	for i, rr := range report.Rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s (%s)\n", rr.Name, rr.Standard))
		if rr.Err != nil {
			sb.WriteString(fmt.Sprintf("  FAILED TO RUN: %v\n", rr.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s  score %.2f  (%d/%d checks)\n",
			passLabel(rr.Result.Passed), rr.Result.Score,
			rr.Result.ChecksPassed, rr.Result.ChecksPerformed))
		writeMessages(&sb, "error", rr.Result.Errors)
		writeMessages(&sb, "note", rr.Result.Warnings)
	}
	sb.WriteString(fmt.Sprintf("\nOverall: %s  weighted score %.2f", passLabel(report.Passed), report.Score))

	p.printBox("AS 1100 COMPLIANCE REPORT", sb.String())
}

func writeMessages(sb *strings.Builder, label string, msgs []string) {
	count := min(len(msgs), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", label, msgs[i]))
	}
	if len(msgs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(msgs)-maxItemsToShow))
	}
}

func passLabel(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
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

// PrintProfile outputs the extracted résumé profile, noting whether it came
// from the LLM or the deterministic fallback.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	source := "LLM"
	if profile.FromFallback {
		source = "fallback"
	}
	sb.WriteString(fmt.Sprintf("Kind:    %s\n", profile.Kind))
	sb.WriteString(fmt.Sprintf("Source:  %s\n", source))
	sb.WriteString(fmt.Sprintf("Terms:   %d\n", len(profile.Terms)))

	if len(profile.Terms) > 0 {
		sb.WriteString("\n")
		count := min(len(profile.Terms), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Terms[i]))
		}
		if len(profile.Terms) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Terms)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the ranked jobs with their score breakdown.
func (p *Printer) PrintMatches(matches []types.RankedJob) {
	if len(matches) == 0 {
		p.printBox("MATCHED JOBS", "No matching jobs found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		title := m.Title
		if m.Company != "" {
			title = fmt.Sprintf("%s @ %s", m.Title, m.Company)
		}
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", m.FinalScore))
		sb.WriteString(fmt.Sprintf("    loc=%.0f skill=%.0f exp=%.0f sem=%.0f\n",
			m.Components.Location, m.Components.Skill, m.Components.Experience, m.Components.Semantic))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(matches)-maxItemsToShow))
	}

	p.printBox("MATCHED JOBS", sb.String())
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintKeywords outputs the extracted keyword set in order.
func (p *Printer) PrintKeywords(keywords []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keywords extracted: %d\n", len(keywords)))
	if len(keywords) > 0 {
		sb.WriteString("\n")
		sb.WriteString(wrapList(keywords, boxWidth-4))
	}
	p.printBox("JOB DESCRIPTION KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the ATS badge, hits, misses, and per-skill matches.
func (p *Printer) PrintReport(view types.ATSView) {
	if !view.Computed {
		p.printBox("ATS COVERAGE", view.Badge()+"\n\nNo keywords loaded. Analyze a job description first.")
		return
	}

	var sb strings.Builder
	sb.WriteString(view.Badge())
	sb.WriteString(fmt.Sprintf("  (%d of %d keywords)\n\n", len(view.Hits), len(view.Keywords)))

	writeSection(&sb, "Covered", view.Hits)
	writeSection(&sb, "Missing", view.Misses)

	if len(view.SkillMatches) > 0 {
		sb.WriteString("Skills:\n")
		for _, m := range view.SkillMatches {
			mark := " "
			if m.Hit {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", mark, m.Skill))
		}
	}

	if view.MissingLine != "" {
		sb.WriteString("\n" + view.MissingLine)
	}

	p.printBox("ATS COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs numbered suggestion lines under their context line.
func (p *Printer) PrintSuggestions(info string, lines []string) {
	var sb strings.Builder
	sb.WriteString(info + "\n\n")
	for i, line := range lines {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
	}
	p.printBox("SUGGESTED LINES", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSection(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// wrapList joins items with ", " and breaks lines before they exceed width.
func wrapList(items []string, width int) string {
	var sb strings.Builder
	lineLen := 0
	for i, item := range items {
		piece := item
		if i < len(items)-1 {
			piece += ","
		}
		n := len([]rune(piece))
		if lineLen > 0 && lineLen+1+n > width {
			sb.WriteString("\n")
			lineLen = 0
		}
		if lineLen > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(piece)
		lineLen += n
	}
	return sb.String()
}

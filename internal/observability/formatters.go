// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
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

// PrintPersonaProfile outputs a human-readable summary of the persona profile.
func (p *Printer) PrintPersonaProfile(profile *types.PersonaProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Domain:   %s\n", profile.Domain))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", profile.Role))
	sb.WriteString(fmt.Sprintf("Job Type: %s\n", profile.JobType))
	sb.WriteString("\n")

	if len(profile.KeywordWeights) > 0 {
		sb.WriteString(fmt.Sprintf("Keyword weights (%d total):\n", len(profile.KeywordWeights)))
		for _, kw := range topKeywords(profile.KeywordWeights, maxItemsToShow) {
			sb.WriteString(fmt.Sprintf("  • %s (%.1f)\n", kw, profile.KeywordWeights[kw]))
		}
		if len(profile.KeywordWeights) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.KeywordWeights)-maxItemsToShow))
		}
	}

	if len(profile.PriorityKeywords) > 0 {
		sb.WriteString("\nPriority keywords:\n")
		priority := make([]string, 0, len(profile.PriorityKeywords))
		for kw := range profile.PriorityKeywords {
			priority = append(priority, kw)
		}
		sort.Strings(priority)
		count := min(len(priority), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", priority[i]))
		}
		if len(priority) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(priority)-3))
		}
	}

	p.printBox("PERSONA PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedSections outputs the top N ranked sections with scores.
func (p *Printer) PrintRankedSections(sections []types.RankedSection, topN int) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total sections ranked: %d\n\n", len(sections)))

	count := min(len(sections), min(topN, maxItemsToShow))
	for i := 0; i < count; i++ {
		sec := sections[i]
		title := sec.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", sec.ImportanceRank, title))
		sb.WriteString(fmt.Sprintf("    Score: %.3f (relevance %.3f)\n", sec.FinalScore, sec.RelevanceScore))
		sb.WriteString(fmt.Sprintf("    %s, page %d\n", sec.DocumentName, sec.PageNumber))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(sections) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more sections", len(sections)-count))
	}

	p.printBox("TOP RANKED SECTIONS", sb.String())
}

// topKeywords returns up to n keywords sorted by weight descending, then
// alphabetically for deterministic output.
func topKeywords(weights map[string]float64, n int) []string {
	keywords := make([]string, 0, len(weights))
	for kw := range weights {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if weights[keywords[i]] != weights[keywords[j]] {
			return weights[keywords[i]] > weights[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	return keywords[:min(len(keywords), n)]
}

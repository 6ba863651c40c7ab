// Package refine extracts short, high-density excerpts from within top-ranked
// sections.
package refine

import (
	"regexp"
	"strings"

	"github.com/Midhun81790/project-1B/internal/persona"
	"github.com/Midhun81790/project-1B/internal/types"
)

const (
	minParagraphWords = 10

	// Pass-1 selection bounds.
	minSelectionWords = 20
	maxSelectionWords = 200
	minKeywordRatio   = 0.02

	// Pass-2 combination bounds.
	minCombinedWords = 40
	maxCombinations  = 2

	maxExcerpts = 3
)

var paragraphSplit = regexp.MustCompile(`\n\s*\n`)

// Refine extracts at most three refined excerpts from a section, possibly
// none. Pass 1 selects individual paragraphs that clear the length and
// domain-keyword thresholds; when it finds fewer than two, pass 2 merges
// consecutive paragraph pairs as a fallback. Pass-1 results win whenever any
// exist.
func Refine(sec types.Section, profile *types.PersonaProfile) []types.RefinedExcerpt {
	paragraphs := splitParagraphs(sec.Content)

	lexicon := keywordSet(persona.DomainLexicon(profile.Domain))

	var selected []types.RefinedExcerpt
	for _, paragraph := range paragraphs {
		if isHighQuality(paragraph, lexicon) {
			selected = append(selected, types.RefinedExcerpt{
				Document:       sec.DocumentName,
				PageNumber:     sec.PageNumber,
				RefinedText:    paragraph,
				AnalysisMethod: types.MethodParagraphSelection,
			})
		}
	}

	if len(selected) >= 2 {
		return truncate(selected)
	}

	combined := combineParagraphs(paragraphs, sec)
	if len(selected) > 0 {
		return truncate(selected)
	}
	return truncate(combined)
}

// isHighQuality keeps paragraphs of moderate length whose domain keyword
// ratio exceeds the minimum.
func isHighQuality(paragraph string, lexicon map[string]bool) bool {
	words := strings.Fields(paragraph)
	if len(words) < minSelectionWords || len(words) > maxSelectionWords {
		return false
	}

	relevant := 0
	for _, word := range words {
		if lexicon[strings.ToLower(word)] {
			relevant++
		}
	}

	return float64(relevant)/float64(len(words)) > minKeywordRatio
}

// combineParagraphs merges consecutive paragraph pairs (stride 2), keeping
// combinations that reach the minimum combined length, capped at
// maxCombinations.
func combineParagraphs(paragraphs []string, sec types.Section) []types.RefinedExcerpt {
	if len(paragraphs) < 2 {
		return nil
	}

	var combined []types.RefinedExcerpt
	for i := 0; i+1 < len(paragraphs) && len(combined) < maxCombinations; i += 2 {
		text := paragraphs[i] + "\n\n" + paragraphs[i+1]
		if len(strings.Fields(text)) < minCombinedWords {
			continue
		}
		combined = append(combined, types.RefinedExcerpt{
			Document:       sec.DocumentName,
			PageNumber:     sec.PageNumber,
			RefinedText:    text,
			AnalysisMethod: types.MethodParagraphCombination,
		})
	}

	return combined
}

// splitParagraphs splits on blank lines and drops paragraphs below the
// minimum word floor.
func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, p := range paragraphSplit.Split(content, -1) {
		p = strings.TrimSpace(p)
		if p != "" && len(strings.Fields(p)) >= minParagraphWords {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func keywordSet(keywords []string) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		set[keyword] = true
	}
	return set
}

func truncate(excerpts []types.RefinedExcerpt) []types.RefinedExcerpt {
	if len(excerpts) > maxExcerpts {
		return excerpts[:maxExcerpts]
	}
	return excerpts
}

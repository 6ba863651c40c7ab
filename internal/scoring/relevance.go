// Package scoring computes persona relevance scores for document sections.
package scoring

import (
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
)

// Weights for the relevance components.
const (
	keywordWeight = 0.4
	titleWeight   = 0.3
	contextWeight = 0.2
	lengthWeight  = 0.1

	// Content length normalization: up to this many words, longer content
	// earns a proportionally higher keyword score.
	contentFactorWords = 100.0

	// Optimal content length range in words.
	minOptimalWords = 50.0
	maxOptimalWords = 300.0
)

// ScoreSection layers the relevance score onto a section. The input section
// is not mutated.
func ScoreSection(sec types.Section, profile *types.PersonaProfile) types.ScoredSection {
	return types.ScoredSection{
		Section:        sec,
		RelevanceScore: Relevance(sec, profile),
	}
}

// Relevance computes a section's fit to the profile in [0, 1]. All component
// functions are total: empty content returns 0.0 rather than an error.
func Relevance(sec types.Section, profile *types.PersonaProfile) float64 {
	content := strings.ToLower(sec.Content)
	title := strings.ToLower(sec.Title)

	if content == "" {
		return 0.0
	}

	total := keywordScore(content, profile)*keywordWeight +
		titleScore(title, profile)*titleWeight +
		contextScore(content, profile)*contextWeight +
		lengthScore(content)*lengthWeight

	return clamp(total)
}

// keywordScore sums the profile weights of matched content words, normalized
// by the total available weight and scaled by a mild length factor.
func keywordScore(content string, profile *types.PersonaProfile) float64 {
	totalWeight := 0.0
	for _, weight := range profile.KeywordWeights {
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0.0
	}

	words := strings.Fields(content)
	matched := 0.0
	for _, word := range words {
		if weight, ok := profile.KeywordWeights[word]; ok {
			matched += weight
		}
	}

	contentFactor := float64(len(words)) / contentFactorWords
	if contentFactor > 1.0 {
		contentFactor = 1.0
	}

	return clamp((matched / totalWeight) * contentFactor)
}

// titleScore weights keyword hits in the title twice, normalized by title
// length and scaled into [0, 1].
func titleScore(title string, profile *types.PersonaProfile) float64 {
	if title == "" {
		return 0.0
	}

	titleWords := strings.Fields(title)
	if len(titleWords) == 0 {
		return 0.0
	}

	score := 0.0
	for _, word := range titleWords {
		if weight, ok := profile.KeywordWeights[word]; ok {
			score += weight * 2
		}
	}

	score /= float64(len(titleWords))
	return clamp(score / 5.0)
}

// contextScore is the fraction of priority keywords found as substrings of
// the content. With no priority keywords it is neutral (0.5), never 0 or 1.
func contextScore(content string, profile *types.PersonaProfile) float64 {
	if len(profile.PriorityKeywords) == 0 {
		return 0.5
	}

	matches := 0
	for keyword := range profile.PriorityKeywords {
		if strings.Contains(content, keyword) {
			matches++
		}
	}

	return clamp(float64(matches) / float64(len(profile.PriorityKeywords)))
}

// lengthScore prefers moderate-length content: full marks inside the optimal
// range, ramping up below it, diminishing (floored at 0.5) above it.
func lengthScore(content string) float64 {
	wordCount := float64(len(strings.Fields(content)))

	switch {
	case wordCount >= minOptimalWords && wordCount <= maxOptimalWords:
		return 1.0
	case wordCount < minOptimalWords:
		return wordCount / minOptimalWords
	default:
		score := maxOptimalWords / wordCount
		if score < 0.5 {
			return 0.5
		}
		return score
	}
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}

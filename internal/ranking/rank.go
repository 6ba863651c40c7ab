// Package ranking combines per-section relevance with quality, completeness,
// position, and uniqueness signals into a global importance ordering.
package ranking

import (
	"sort"

	"github.com/Midhun81790/project-1B/internal/types"
)

// Weights for the five ranking components; they sum to 1.0.
const (
	relevanceWeight    = 0.4
	qualityWeight      = 0.25
	completenessWeight = 0.15
	positionWeight     = 0.1
	uniquenessWeight   = 0.1
)

// Rank sorts scored sections by combined final score and assigns dense
// importance ranks starting at 1. Empty input yields empty output. Ties keep
// the original insertion order (first document, then first extraction order),
// so the sort must be stable. The input slice is not mutated.
func Rank(sections []types.ScoredSection, profile *types.PersonaProfile) []types.RankedSection {
	if len(sections) == 0 {
		return []types.RankedSection{}
	}

	ranked := make([]types.RankedSection, 0, len(sections))
	for i, sec := range sections {
		scores := types.ScoreBreakdown{
			Relevance:    sec.RelevanceScore,
			Quality:      qualityScore(sec.Section),
			Completeness: completenessScore(sec.Content),
			Position:     positionScore(sec.PageNumber),
			Uniqueness:   uniquenessScore(i, sections),
		}

		ranked = append(ranked, types.RankedSection{
			ScoredSection: sec,
			Scores:        scores,
			FinalScore:    finalScore(scores),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	for i := range ranked {
		ranked[i].ImportanceRank = i + 1
	}

	return ranked
}

func finalScore(scores types.ScoreBreakdown) float64 {
	return scores.Relevance*relevanceWeight +
		scores.Quality*qualityWeight +
		scores.Completeness*completenessWeight +
		scores.Position*positionWeight +
		scores.Uniqueness*uniquenessWeight
}

// positionScore is a step function of the page number: early pages usually
// carry the key information.
func positionScore(pageNumber int) float64 {
	switch {
	case pageNumber <= 1:
		return 1.0
	case pageNumber <= 3:
		return 0.8
	case pageNumber <= 5:
		return 0.6
	default:
		return 0.4
	}
}

// uniquenessScore is one minus the mean Jaccard word overlap against every
// other section in the batch (cross-document). A section with no comparable
// peers scores 1.0; empty content scores 0.0.
func uniquenessScore(index int, all []types.ScoredSection) float64 {
	current := wordSet(all[index].Content)
	if len(current) == 0 {
		return 0.0
	}

	totalSimilarity := 0.0
	compared := 0
	for i := range all {
		if i == index {
			continue
		}
		other := wordSet(all[i].Content)
		if len(other) == 0 {
			continue
		}
		totalSimilarity += jaccard(current, other)
		compared++
	}

	if compared == 0 {
		return 1.0
	}

	uniqueness := 1.0 - totalSimilarity/float64(compared)
	if uniqueness < 0 {
		return 0.0
	}
	return uniqueness
}

// wordSet builds the lower-cased word set of a text.
func wordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range splitWords(text) {
		words[word] = true
	}
	return words
}

// jaccard is intersection over union of two word sets.
func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for word := range a {
		if b[word] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

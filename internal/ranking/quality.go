package ranking

import (
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
)

// Weights for the quality sub-components.
const (
	readabilityWeight  = 0.3
	structureWeight    = 0.3
	densityWeight      = 0.3
	titleQualityWeight = 0.1
)

// genericTitles never earn the non-generic title quality point.
var genericTitles = map[string]bool{
	"untitled": true,
	"section":  true,
	"chapter":  true,
}

// qualityScore combines readability, structure, information density, and
// title quality. Empty content scores 0.0.
func qualityScore(sec types.Section) float64 {
	if sec.Content == "" {
		return 0.0
	}

	return readability(sec.Content)*readabilityWeight +
		structure(sec.Content)*structureWeight +
		informationDensity(sec.Content)*densityWeight +
		titleQuality(sec.Title)*titleQualityWeight
}

// readability rewards average sentence length of 10-20 words and average
// word length of 4-6 characters; each metric contributes 1.0 in range, 0.5
// outside, averaged.
func readability(content string) float64 {
	words := strings.Fields(content)
	sentences := strings.Split(content, ".")
	if len(words) == 0 || len(sentences) == 0 {
		return 0.0
	}

	avgSentenceLength := float64(len(words)) / float64(len(sentences))
	totalChars := 0
	for _, word := range words {
		totalChars += len(word)
	}
	avgWordLength := float64(totalChars) / float64(len(words))

	sentenceScore := 0.5
	if avgSentenceLength >= 10 && avgSentenceLength <= 20 {
		sentenceScore = 1.0
	}
	wordScore := 0.5
	if avgWordLength >= 4 && avgWordLength <= 6 {
		wordScore = 1.0
	}

	return (sentenceScore + wordScore) / 2
}

// structure rewards list-like lines, multi-line content, and varied line
// lengths; each boolean contributes equally.
func structure(content string) float64 {
	lines := strings.Split(content, "\n")

	hasLists := false
	nonEmpty := 0
	lineLengths := make(map[int]bool)
	for _, line := range lines {
		prefix := line
		if len(prefix) > 5 {
			prefix = prefix[:5]
		}
		if strings.Contains(line, ":") || strings.Contains(line, "•") || strings.Contains(prefix, "-") {
			hasLists = true
		}
		if strings.TrimSpace(line) != "" {
			nonEmpty++
			lineLengths[len(strings.Fields(line))] = true
		}
	}

	factors := 0
	if hasLists {
		factors++
	}
	if nonEmpty > 1 {
		factors++
	}
	if len(lineLengths) > 2 {
		factors++
	}

	return float64(factors) / 3.0
}

// informationDensity is the fraction of words longer than 3 characters and
// fully alphabetic, scaled by 1.5 and clamped to 1.0.
func informationDensity(content string) float64 {
	words := strings.Fields(content)
	if len(words) == 0 {
		return 0.0
	}

	informative := 0
	for _, word := range words {
		if len(word) > 3 && isAlpha(word) {
			informative++
		}
	}

	density := float64(informative) / float64(len(words)) * 1.5
	if density > 1.0 {
		return 1.0
	}
	return density
}

// titleQuality rewards a 3-10 word title containing at least one word longer
// than 3 characters that is not a generic placeholder.
func titleQuality(title string) float64 {
	if title == "" {
		return 0.0
	}

	words := strings.Fields(title)

	factors := 0
	if len(words) >= 3 && len(words) <= 10 {
		factors++
	}
	for _, word := range words {
		if len(word) > 3 {
			factors++
			break
		}
	}
	if !genericTitles[strings.ToLower(title)] {
		factors++
	}

	return float64(factors) / 3.0
}

func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func splitWords(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

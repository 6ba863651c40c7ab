package segmentation

import (
	"regexp"
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// computeStats annotates section content with word, sentence, and character
// counts plus mean word length.
func computeStats(content string) types.TextStats {
	words := strings.Fields(content)

	sentenceCount := 0
	for _, s := range sentenceSplit.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}

	avgWordLength := 0.0
	if len(words) > 0 {
		total := 0
		for _, word := range words {
			total += len(word)
		}
		avgWordLength = float64(total) / float64(len(words))
	}

	return types.TextStats{
		WordCount:     len(words),
		SentenceCount: sentenceCount,
		CharCount:     len(content),
		AvgWordLength: avgWordLength,
	}
}

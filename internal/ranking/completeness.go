package ranking

import (
	"regexp"
	"strings"
)

// Specific-detail markers: percentages, money, 4-digit years, durations, and
// specificity adverbs.
var detailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\b\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d+\s*(hours?|days?|weeks?|months?)\b`),
	regexp.MustCompile(`(?i)\b(specifically|particularly|exactly|precisely)\b`),
}

// Quantitative-data markers: percentages, large-number units, physical units,
// temperatures, and time units.
var quantitativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?%`),
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(million|billion|thousand)`),
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(kg|lb|oz|g|l|ml)`),
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*degrees?`),
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(minutes?|hours?|days?)`),
}

// actionMarkers flag how-to/imperative phrasing.
var actionMarkers = []string{
	"how to", "steps", "process", "method", "approach", "strategy",
	"implement", "create", "develop", "build", "design", "plan",
	"should", "must", "need to", "important to", "recommended",
}

// exampleMarkers flag illustrative phrasing.
var exampleMarkers = []string{
	"for example", "such as", "including", "like", "instance",
	"e.g.", "i.e.", "namely", "case study", "illustration",
}

// completenessScore is the mean of four information-type booleans: specific
// details, actionable language, examples, and quantitative data.
func completenessScore(content string) float64 {
	if content == "" {
		return 0.0
	}

	contentLower := strings.ToLower(content)

	factors := 0
	if matchesAny(content, detailPatterns) {
		factors++
	}
	if containsAnyMarker(contentLower, actionMarkers) {
		factors++
	}
	if containsAnyMarker(contentLower, exampleMarkers) {
		factors++
	}
	if matchesAny(content, quantitativePatterns) {
		factors++
	}

	return float64(factors) / 4.0
}

func matchesAny(content string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(content) {
			return true
		}
	}
	return false
}

func containsAnyMarker(content string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

package segmentation

import (
	"regexp"
	"strings"
	"unicode"
)

// Header detection rules, evaluated in order; first match wins. The fixed
// lexicon covers section names common to academic and business documents.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.?\s+[A-Z]`),
	regexp.MustCompile(`^[A-Z][A-Z\s]+$`),
	regexp.MustCompile(`^[A-Z][a-z\s]+:$`),
	regexp.MustCompile(`^(Abstract|Introduction|Conclusion|References|Executive Summary)`),
	regexp.MustCompile(`^(Overview|Results|Discussion|Methodology|Background)`),
}

var (
	titleClean    = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	sentenceEnd   = regexp.MustCompile(`[.!?]`)
	maxHeaderLen  = 150
	maxTitleWords = 6
)

// isLikelyHeader reports whether a raw-text line looks like a section header.
func isLikelyHeader(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxHeaderLen {
		return false
	}

	for _, pattern := range headerPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	words := strings.Fields(text)
	if isUpper(text) && len(words) <= 8 {
		return true
	}
	if strings.HasSuffix(text, ":") && len(words) <= 6 {
		return true
	}

	return false
}

// isUpper reports whether s contains at least one letter and no lower-case
// letters, mirroring Python's str.isupper.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// generateTitle builds a short section title from leading content: cleaned of
// punctuation, truncated to maxTitleWords with an ellipsis suffix.
func generateTitle(text string) string {
	cleaned := titleClean.ReplaceAllString(text, "")
	words := strings.Fields(cleaned)
	if len(words) > 10 {
		words = words[:10]
	}

	if len(words) >= 3 {
		return strings.Join(words[:min(len(words), maxTitleWords)], " ") + "..."
	}
	if len(words) > 0 {
		return strings.Join(words, " ")
	}
	return "Untitled Section"
}

// splitOnSentenceEnd splits text at sentence terminators. The result always
// has at least one element.
func splitOnSentenceEnd(text string) []string {
	return sentenceEnd.Split(text, -1)
}

package persona

import (
	"regexp"
	"sort"
	"strings"
)

const maxTaskKeywords = 10

// taskStopWords are excluded from task-derived keyword extraction.
var taskStopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true, "they": true,
	"been": true, "have": true, "will": true, "would": true, "could": true,
	"should": true, "there": true, "their": true,
}

var (
	wordPattern   = regexp.MustCompile(`\b\w{4,}\b`)
	quotedPattern = regexp.MustCompile(`"([^"]*)"`)
	numberPattern = regexp.MustCompile(`\b\d+\b`)
)

// dietaryTerms are special service/dietary requirements promoted to priority
// keywords when literally present in the task.
var dietaryTerms = []string{"vegetarian", "gluten-free", "buffet"}

// extractTaskKeywords returns the most frequent non-stop-words of length >= 4
// from the task text, capped at maxTaskKeywords. Frequency ties break by
// first occurrence so extraction is deterministic.
func extractTaskKeywords(task string) []string {
	words := wordPattern.FindAllString(strings.ToLower(task), -1)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := make([]string, 0, len(words))
	for i, word := range words {
		if taskStopWords[word] {
			continue
		}
		if _, seen := counts[word]; !seen {
			firstSeen[word] = i
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > maxTaskKeywords {
		order = order[:maxTaskKeywords]
	}
	return order
}

// extractPriorityKeywords collects double-quoted substrings, bare numeric
// tokens, and literally present dietary/service terms, all lower-cased.
func extractPriorityKeywords(task string) map[string]bool {
	priority := make(map[string]bool)

	for _, match := range quotedPattern.FindAllStringSubmatch(task, -1) {
		if match[1] != "" {
			priority[strings.ToLower(match[1])] = true
		}
	}

	for _, number := range numberPattern.FindAllString(task, -1) {
		priority[number] = true
	}

	taskLower := strings.ToLower(task)
	for _, term := range dietaryTerms {
		if strings.Contains(taskLower, term) {
			priority[term] = true
		}
	}

	return priority
}

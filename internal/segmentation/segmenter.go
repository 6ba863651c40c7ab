// Package segmentation converts a document's page sequence into candidate
// sections using a cascade of extraction strategies.
package segmentation

import (
	"regexp"
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
)

const (
	// Fallback thresholds: later strategies supplement (not replace) earlier
	// results when too few sections have been found.
	minHeaderSections = 3
	minTotalSections  = 5

	// Paragraph-grouping parameters.
	paragraphsPerChunk = 4
	minChunkWords      = 50

	// Sliding-window parameters.
	windowWords  = 250
	overlapWords = 50
)

var paragraphSplit = regexp.MustCompile(`\n\s*\n`)

// Segment extracts candidate sections from a decoded document.
//
// Three strategies run as a cascade: header-based always, paragraph-grouping
// when header-based yields fewer than minHeaderSections, and sliding-window
// when the total is still below minTotalSections. Results are deduplicated
// and annotated with text statistics. An empty page list yields an empty
// slice, never an error.
func Segment(doc *types.Document) []types.Section {
	if doc == nil || len(doc.Pages) == 0 {
		return nil
	}

	sections := extractByHeaders(doc)

	if len(sections) < minHeaderSections {
		sections = append(sections, extractByParagraphs(doc)...)
	}

	if len(sections) < minTotalSections {
		sections = append(sections, extractBySlidingWindow(doc)...)
	}

	sections = deduplicate(sections)

	for i := range sections {
		sections[i].TextStats = computeStats(sections[i].Content)
	}

	return sections
}

// extractByHeaders walks each page's layout blocks (or raw-text lines when
// blocks are absent) in order. A header closes the open section and opens a
// new one; other text accumulates into the open section's content.
func extractByHeaders(doc *types.Document) []types.Section {
	var sections []types.Section
	var current *types.Section
	var content strings.Builder

	close := func() {
		if current == nil {
			return
		}
		text := strings.TrimSpace(content.String())
		if text != "" {
			sec := *current
			sec.Content = text
			sections = append(sections, sec)
		}
		current = nil
		content.Reset()
	}

	open := func(title string, pageNum int) {
		close()
		current = &types.Section{
			Title:            title,
			PageNumber:       pageNum,
			ExtractionMethod: types.MethodHeaderBased,
			DocumentName:     doc.Name,
		}
	}

	for _, page := range doc.Pages {
		if len(page.LayoutBlocks) > 0 {
			for _, block := range page.LayoutBlocks {
				text := strings.TrimSpace(block.Text)
				if text == "" {
					continue
				}
				if block.IsHeader || isLikelyHeader(text) {
					open(text, page.PageNumber)
				} else if current != nil {
					content.WriteString(text)
					content.WriteString("\n\n")
				}
			}
			continue
		}

		for _, line := range strings.Split(page.RawText, "\n") {
			line = strings.TrimSpace(line)
			if isLikelyHeader(line) {
				open(line, page.PageNumber)
			} else if current != nil && line != "" {
				content.WriteString(line)
				content.WriteString("\n")
			}
		}
	}

	close()
	return sections
}

// extractByParagraphs splits each page on blank lines and groups paragraphs
// into fixed-size chunks, keeping chunks that meet the minimum word count.
func extractByParagraphs(doc *types.Document) []types.Section {
	var sections []types.Section

	for _, page := range doc.Pages {
		paragraphs := splitParagraphs(page.RawText)

		for i := 0; i < len(paragraphs); i += paragraphsPerChunk {
			end := i + paragraphsPerChunk
			if end > len(paragraphs) {
				end = len(paragraphs)
			}
			content := strings.Join(paragraphs[i:end], "\n\n")
			if len(strings.Fields(content)) < minChunkWords {
				continue
			}

			firstSentence := splitOnSentenceEnd(content)[0]
			sections = append(sections, types.Section{
				Title:            generateTitle(firstSentence),
				PageNumber:       page.PageNumber,
				Content:          content,
				ExtractionMethod: types.MethodParagraphBased,
				DocumentName:     doc.Name,
			})
		}
	}

	return sections
}

// extractBySlidingWindow treats the whole document as a word stream and emits
// overlapping windows, attributing each window to the page containing its
// opening characters.
func extractBySlidingWindow(doc *types.Document) []types.Section {
	words := strings.Fields(doc.FullText())
	if len(words) < windowWords {
		return nil
	}

	var sections []types.Section
	stride := windowWords - overlapWords

	for i := 0; i+windowWords <= len(words); i += stride {
		content := strings.Join(words[i:i+windowWords], " ")
		sections = append(sections, types.Section{
			Title:            generateTitle(firstChars(content, 100)),
			PageNumber:       findPageForText(content, doc.Pages),
			Content:          content,
			ExtractionMethod: types.MethodSlidingWindow,
			DocumentName:     doc.Name,
		})
	}

	return sections
}

// findPageForText locates the page whose raw text contains the window's first
// 50 characters, defaulting to page 1.
func findPageForText(text string, pages []types.Page) int {
	prefix := firstChars(text, 50)
	for _, page := range pages {
		if strings.Contains(page.RawText, prefix) {
			return page.PageNumber
		}
	}
	return 1
}

// deduplicate collapses sections whose first 100 characters (lower-cased,
// whitespace-stripped) collide, keeping the first occurrence. This is a cheap
// fingerprint, not exact-duplicate detection: near-duplicate sections with
// different openings are not merged.
func deduplicate(sections []types.Section) []types.Section {
	seen := make(map[string]bool, len(sections))
	unique := sections[:0]

	for _, sec := range sections {
		fingerprint := strings.Join(strings.Fields(strings.ToLower(firstChars(sec.Content, 100))), "")
		if seen[fingerprint] {
			continue
		}
		seen[fingerprint] = true
		unique = append(unique, sec)
	}

	return unique
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphSplit.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func firstChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

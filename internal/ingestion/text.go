package ingestion

import (
	"os"
	"regexp"
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
)

var (
	multiSpace = regexp.MustCompile(`[ \t]+`)
	blankRuns  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes decoded text while preserving structure: line endings
// become LF, trailing whitespace is trimmed, runs of spaces collapse, and
// blank-line runs shrink to at most one separator.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			cleaned = append(cleaned, "")
			continue
		}
		cleaned = append(cleaned, multiSpace.ReplaceAllString(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// decodeTextFile reads a plain-text document (including the .pdf.txt fallback
// format) as a single page. Markdown-style "#" headings become header layout
// blocks; other blank-line-delimited blocks become body blocks.
func decodeTextFile(path, name string) (*types.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content := CleanText(string(raw))
	page := types.Page{PageNumber: 1, RawText: content}

	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		// A block may open with a heading line followed by body text.
		lines := strings.SplitN(block, "\n", 2)
		first := strings.TrimSpace(lines[0])
		if strings.HasPrefix(first, "#") {
			page.LayoutBlocks = append(page.LayoutBlocks, types.LayoutBlock{
				Text:     strings.TrimSpace(strings.TrimLeft(first, "#")),
				IsHeader: true,
			})
			if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
				page.LayoutBlocks = append(page.LayoutBlocks, types.LayoutBlock{
					Text: strings.TrimSpace(lines[1]),
				})
			}
			continue
		}

		page.LayoutBlocks = append(page.LayoutBlocks, types.LayoutBlock{Text: block})
	}

	return &types.Document{Name: name, Pages: []types.Page{page}}, nil
}

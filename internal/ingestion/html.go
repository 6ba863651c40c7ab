package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Midhun81790/project-1B/internal/types"
)

// decodeHTML decodes an HTML document as a single page. Heading elements
// become header layout blocks; paragraphs and list items become body blocks.
func decodeHTML(path, name string) (*types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	page := types.Page{PageNumber: 1}
	var rawParts []string

	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		isHeader := strings.HasPrefix(goquery.NodeName(s), "h")
		page.LayoutBlocks = append(page.LayoutBlocks, types.LayoutBlock{
			Text:     text,
			IsHeader: isHeader,
		})
		rawParts = append(rawParts, text)
	})

	page.RawText = CleanText(strings.Join(rawParts, "\n\n"))

	if page.RawText == "" {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}

	return &types.Document{Name: name, Pages: []types.Page{page}}, nil
}

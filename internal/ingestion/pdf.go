package ingestion

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/Midhun81790/project-1B/internal/types"
)

// decodePDF extracts per-page plain text from a PDF. The extractor yields no
// layout classification, so PDF pages carry raw text only and downstream
// segmentation falls back to line heuristics.
func decodePDF(path, name string) (*types.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &types.Document{Name: name}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single corrupt page is tolerated; the rest of the document
			// remains usable.
			continue
		}
		doc.Pages = append(doc.Pages, types.Page{
			PageNumber: i,
			RawText:    CleanText(text),
		})
	}

	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}

	return doc, nil
}

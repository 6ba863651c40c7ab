// Package ingestion decodes source documents into per-page text for the
// analysis pipeline. Decoder failures surface as SkipError values rather than
// propagating raw errors, so a bad document never aborts a run.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Midhun81790/project-1B/internal/types"
)

// DecodeDocument decodes the file at path into a Document named name.
// Supported formats: .pdf (with a sibling .pdf.txt text fallback), .txt, and
// .html/.htm. Any failure is returned as a *SkipError.
func DecodeDocument(path, name string) (*types.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		doc, err := decodePDF(path, name)
		if err == nil {
			return doc, nil
		}
		// A pre-extracted text sibling stands in for an unreadable PDF.
		fallback := path + ".txt"
		if _, statErr := os.Stat(fallback); statErr == nil {
			doc, txtErr := decodeTextFile(fallback, name)
			if txtErr == nil {
				return doc, nil
			}
		}
		return nil, &SkipError{Document: name, Cause: err}

	case ".txt":
		doc, err := decodeTextFile(path, name)
		if err != nil {
			return nil, &SkipError{Document: name, Cause: err}
		}
		return doc, nil

	case ".html", ".htm":
		doc, err := decodeHTML(path, name)
		if err != nil {
			return nil, &SkipError{Document: name, Cause: err}
		}
		return doc, nil

	default:
		return nil, &SkipError{Document: name, Cause: fmt.Errorf("unsupported file extension: %s", ext)}
	}
}

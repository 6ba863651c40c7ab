// Package types provides type definitions for structured data used throughout the document intelligence system.
package types

import "strings"

// LayoutBlock is a single classified text block on a page, in reading order.
// BBox is the block's bounding box (x0, y0, x1, y1) when the decoder provides one.
type LayoutBlock struct {
	Text     string     `json:"text"`
	IsHeader bool       `json:"is_header"`
	BBox     [4]float64 `json:"bbox,omitempty"`
}

// Page holds the extracted text of a single document page.
// LayoutBlocks is optional; consumers must tolerate its absence and fall back
// to raw-text heuristics.
type Page struct {
	PageNumber   int           `json:"page_number"`
	RawText      string        `json:"raw_text"`
	LayoutBlocks []LayoutBlock `json:"layout_blocks,omitempty"`
}

// Document is a decoded document: an ordered page sequence plus the name it
// was referenced by in the input collection.
type Document struct {
	Name  string `json:"name"`
	Pages []Page `json:"pages"`
}

// FullText returns the concatenated raw text of all pages, newline-joined.
func (d *Document) FullText() string {
	parts := make([]string, 0, len(d.Pages))
	for _, page := range d.Pages {
		parts = append(parts, page.RawText)
	}
	return strings.Join(parts, "\n")
}

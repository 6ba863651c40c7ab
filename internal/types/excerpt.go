package types

// AnalysisMethod records which refinement pass produced an excerpt.
type AnalysisMethod string

const (
	MethodParagraphSelection   AnalysisMethod = "paragraph_selection"
	MethodParagraphCombination AnalysisMethod = "paragraph_combination"
)

// RefinedExcerpt is a short, high-density passage selected from within a
// top-ranked section. Derived and read-only.
type RefinedExcerpt struct {
	Document       string         `json:"document"`
	PageNumber     int            `json:"page_number"`
	RefinedText    string         `json:"refined_text"`
	AnalysisMethod AnalysisMethod `json:"analysis_method"`
}

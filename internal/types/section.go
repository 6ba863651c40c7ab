package types

// ExtractionMethod records which segmentation strategy produced a section.
type ExtractionMethod string

const (
	MethodHeaderBased    ExtractionMethod = "header_based"
	MethodParagraphBased ExtractionMethod = "paragraph_based"
	MethodSlidingWindow  ExtractionMethod = "sliding_window"
)

// TextStats holds length statistics computed over a section's content.
type TextStats struct {
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	CharCount     int     `json:"char_count"`
	AvgWordLength float64 `json:"avg_word_length"`
}

// Section is a contiguous span of document text with a title, page, and
// extraction provenance. Content is always non-empty and trimmed.
type Section struct {
	Title            string           `json:"title"`
	PageNumber       int              `json:"page_number"`
	Content          string           `json:"content"`
	ExtractionMethod ExtractionMethod `json:"extraction_method"`
	DocumentName     string           `json:"document_name"`
	TextStats
}

// ScoredSection layers a persona relevance score on top of a Section.
// Sections are never mutated in place; each pipeline stage returns a new
// value embedding the previous stage's output.
type ScoredSection struct {
	Section
	RelevanceScore float64 `json:"relevance_score"`
}

// ScoreBreakdown holds the five independent ranking signals.
type ScoreBreakdown struct {
	Relevance    float64 `json:"relevance_score"`
	Quality      float64 `json:"quality_score"`
	Completeness float64 `json:"completeness_score"`
	Position     float64 `json:"position_score"`
	Uniqueness   float64 `json:"uniqueness_score"`
}

// RankedSection is the final per-section record: the scored section plus its
// component breakdown, combined score, and dense 1..N importance rank.
type RankedSection struct {
	ScoredSection
	Scores         ScoreBreakdown `json:"scores"`
	FinalScore     float64        `json:"final_score"`
	ImportanceRank int            `json:"importance_rank"`
}

// Package output assembles, validates, and writes the collection analysis
// report.
package output

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/Midhun81790/project-1B/internal/types"
)

// Report is the output.json document produced by a pipeline run.
type Report struct {
	Metadata           Metadata           `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection       `json:"subsection_analysis"`
}

// Metadata echoes the run inputs alongside run identity and timing.
type Metadata struct {
	RunID               string   `json:"run_id"`
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section in the report.
type ExtractedSection struct {
	Document       string  `json:"document"`
	SectionTitle   string  `json:"section_title"`
	ImportanceRank int     `json:"importance_rank"`
	PageNumber     int     `json:"page_number"`
	RelevanceScore float64 `json:"relevance_score"`
	FinalScore     float64 `json:"final_score"`
}

// Subsection is one refined excerpt in the report.
type Subsection struct {
	Document       string `json:"document"`
	RefinedText    string `json:"refined_text"`
	PageNumber     int    `json:"page_number"`
	AnalysisMethod string `json:"analysis_method"`
}

// ReportMeta carries run identity into report assembly.
type ReportMeta struct {
	RunID       string
	TopSections int
	Timestamp   time.Time
}

// BuildReport assembles the report from ranked sections and refined excerpts.
// Only the top meta.TopSections ranked sections appear in extracted_sections.
func BuildReport(input *types.CollectionInput, ranked []types.RankedSection, excerpts []types.RefinedExcerpt, meta ReportMeta) *Report {
	inputDocs := make([]string, 0, len(input.Documents))
	for _, ref := range input.Documents {
		inputDocs = append(inputDocs, ref.Filename)
	}

	sections := make([]ExtractedSection, 0, min(len(ranked), meta.TopSections))
	for i, sec := range ranked {
		if i >= meta.TopSections {
			break
		}
		sections = append(sections, ExtractedSection{
			Document:       sec.DocumentName,
			SectionTitle:   sec.Title,
			ImportanceRank: sec.ImportanceRank,
			PageNumber:     sec.PageNumber,
			RelevanceScore: round3(sec.RelevanceScore),
			FinalScore:     round3(sec.FinalScore),
		})
	}

	subsections := make([]Subsection, 0, len(excerpts))
	for _, ex := range excerpts {
		subsections = append(subsections, Subsection{
			Document:       ex.Document,
			RefinedText:    ex.RefinedText,
			PageNumber:     ex.PageNumber,
			AnalysisMethod: string(ex.AnalysisMethod),
		})
	}

	return &Report{
		Metadata: Metadata{
			RunID:               meta.RunID,
			InputDocuments:      inputDocs,
			Persona:             input.Persona.Role,
			JobToBeDone:         input.JobToBeDone.Task,
			ProcessingTimestamp: meta.Timestamp.UTC().Format(time.RFC3339),
		},
		ExtractedSections:  sections,
		SubsectionAnalysis: subsections,
	}
}

// WriteReport validates the report against the embedded schema and writes it
// as indented JSON.
func WriteReport(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := ValidateReportJSON(string(data)); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}

// round3 rounds to three decimal places, matching score precision in the
// report.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// Package pipeline provides the high-level orchestration for a document
// intelligence run: decode, profile, segment, score, rank, refine, report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Midhun81790/project-1B/internal/ingestion"
	"github.com/Midhun81790/project-1B/internal/observability"
	"github.com/Midhun81790/project-1B/internal/output"
	"github.com/Midhun81790/project-1B/internal/persona"
	"github.com/Midhun81790/project-1B/internal/ranking"
	"github.com/Midhun81790/project-1B/internal/refine"
	"github.com/Midhun81790/project-1B/internal/scoring"
	"github.com/Midhun81790/project-1B/internal/segmentation"
	"github.com/Midhun81790/project-1B/internal/types"
)

// DefaultTopSections is the report cutoff: subsection refinement runs only on
// this many top-ranked sections.
const DefaultTopSections = 10

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	InputDir    string
	OutputDir   string
	TopSections int
	Verbose     bool
	OnProgress  ProgressCallback
}

// Result summarizes a completed run.
type Result struct {
	RunID              string
	OutputPath         string
	DocumentsProcessed int
	DocumentsSkipped   int
	SectionsRanked     int
	ExcerptsRefined    int
	Elapsed            time.Duration
}

// RunCollection processes a complete document collection end to end and
// writes output.json into the output directory.
func RunCollection(ctx context.Context, opts RunOptions) (*Result, error) {
	start := time.Now()
	runID := uuid.New()
	printer := observability.NewPrinter(os.Stdout)

	if opts.TopSections <= 0 {
		opts.TopSections = DefaultTopSections
	}

	fmt.Printf("Step 1/6: Loading collection input from %s...\n", opts.InputDir)
	input, err := LoadCollectionInput(opts.InputDir)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, "collection_input",
		fmt.Sprintf("Loaded input configuration with %d documents", len(input.Documents)), nil)

	fmt.Printf("Step 2/6: Decoding %d documents...\n", len(input.Documents))
	documents, skipped := decodeDocuments(opts.InputDir, input.Documents)
	emitProgress(&opts, runID, "decode",
		fmt.Sprintf("Decoded %d documents (%d skipped)", len(documents), skipped), nil)

	fmt.Printf("Step 3/6: Building persona profile...\n")
	profile := persona.Analyze(*input.Persona, *input.JobToBeDone)
	if opts.Verbose {
		printer.PrintPersonaProfile(profile)
	}
	emitProgress(&opts, runID, "persona_profile",
		fmt.Sprintf("Profiled %s/%s for %s", profile.Domain, profile.Role, profile.JobType), profile)

	fmt.Printf("Step 4/6: Segmenting and scoring sections...\n")
	scored, err := segmentAndScore(ctx, documents, profile)
	if err != nil {
		return nil, err
	}

	// Ranking is the synchronization barrier: uniqueness and rank assignment
	// need the complete section pool.
	fmt.Printf("Step 5/6: Ranking %d sections...\n", len(scored))
	ranked := ranking.Rank(scored, profile)
	if opts.Verbose {
		printer.PrintRankedSections(ranked, opts.TopSections)
	}
	emitProgress(&opts, runID, "rank",
		fmt.Sprintf("Ranked %d sections", len(ranked)), nil)

	fmt.Printf("Step 6/6: Refining top %d sections...\n", opts.TopSections)
	var excerpts []types.RefinedExcerpt
	for i, sec := range ranked {
		if i >= opts.TopSections {
			break
		}
		excerpts = append(excerpts, refine.Refine(sec.Section, profile)...)
	}
	emitProgress(&opts, runID, "refine",
		fmt.Sprintf("Refined %d excerpts", len(excerpts)), nil)

	report := output.BuildReport(input, ranked, excerpts, output.ReportMeta{
		RunID:       runID.String(),
		TopSections: opts.TopSections,
		Timestamp:   time.Now(),
	})

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	outputPath := filepath.Join(opts.OutputDir, "output.json")
	if err := output.WriteReport(report, outputPath); err != nil {
		return nil, err
	}

	return &Result{
		RunID:              runID.String(),
		OutputPath:         outputPath,
		DocumentsProcessed: len(documents),
		DocumentsSkipped:   skipped,
		SectionsRanked:     len(ranked),
		ExcerptsRefined:    len(excerpts),
		Elapsed:            time.Since(start),
	}, nil
}

// decodeDocuments decodes each listed document, logging and excluding the
// ones that cannot be read. A skipped document never fails the run.
func decodeDocuments(dir string, refs []types.DocumentRef) ([]*types.Document, int) {
	documents := make([]*types.Document, 0, len(refs))
	skipped := 0

	for _, ref := range refs {
		doc, err := ingestion.DecodeDocument(filepath.Join(dir, ref.Filename), ref.Filename)
		if err != nil {
			var skip *ingestion.SkipError
			if errors.As(err, &skip) {
				fmt.Printf("Warning: %v\n", skip)
			} else {
				fmt.Printf("Warning: skipping document %s: %v\n", ref.Filename, err)
			}
			skipped++
			continue
		}
		documents = append(documents, doc)
	}

	return documents, skipped
}

// segmentAndScore runs segmentation and relevance scoring in parallel across
// documents. Results keep document order so downstream tie-breaks remain
// stable regardless of goroutine scheduling.
func segmentAndScore(ctx context.Context, documents []*types.Document, profile *types.PersonaProfile) ([]types.ScoredSection, error) {
	perDocument := make([][]types.ScoredSection, len(documents))

	g, gCtx := errgroup.WithContext(ctx)
	for i, doc := range documents {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			sections := segmentation.Segment(doc)
			scored := make([]types.ScoredSection, 0, len(sections))
			for _, sec := range sections {
				scored = append(scored, scoring.ScoreSection(sec, profile))
			}
			perDocument[i] = scored
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.ScoredSection
	for _, scored := range perDocument {
		all = append(all, scored...)
	}
	return all, nil
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Midhun81790/project-1B/internal/ingestion"
	"github.com/Midhun81790/project-1B/internal/segmentation"
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Decode a single document and extract its sections",
	Long:  "Decodes one PDF, text, or HTML document and runs the layered segmentation cascade (headers, paragraphs, sliding window), producing a sections JSON array.",
	RunE:  runSegment,
}

var (
	segmentDocument string
	segmentOutput   string
)

func init() {
	segmentCmd.Flags().StringVarP(&segmentDocument, "document", "d", "", "Path to input document (.pdf, .txt, .html) (required)")
	segmentCmd.Flags().StringVarP(&segmentOutput, "out", "o", "", "Path to output sections JSON file (required)")

	if err := segmentCmd.MarkFlagRequired("document"); err != nil {
		panic(fmt.Sprintf("failed to mark document flag as required: %v", err))
	}
	if err := segmentCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(segmentCmd)
}

func runSegment(_ *cobra.Command, _ []string) error {
	doc, err := ingestion.DecodeDocument(segmentDocument, filepath.Base(segmentDocument))
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	sections := segmentation.Segment(doc)

	jsonOutput, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sections to JSON: %w", err)
	}

	if err := writeStepOutput(segmentOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d sections from %s to %s\n", len(sections), doc.Name, segmentOutput)

	return nil
}

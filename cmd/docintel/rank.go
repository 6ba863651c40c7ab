package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Midhun81790/project-1B/internal/ranking"
	"github.com/Midhun81790/project-1B/internal/scoring"
	"github.com/Midhun81790/project-1B/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank extracted sections against a persona profile",
	Long:  "Deterministically scores sections for persona relevance and ranks them by combined importance, producing a ranked sections JSON sorted by final score.",
	RunE:  runRank,
}

var (
	rankSections string
	rankProfile  string
	rankOutput   string
)

func init() {
	rankCmd.Flags().StringVarP(&rankSections, "sections", "s", "", "Path to input sections JSON file (required)")
	rankCmd.Flags().StringVarP(&rankProfile, "profile", "p", "", "Path to input PersonaProfile JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked sections JSON file (required)")

	if err := rankCmd.MarkFlagRequired("sections"); err != nil {
		panic(fmt.Sprintf("failed to mark sections flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	// 1. Load sections
	sectionsContent, err := os.ReadFile(rankSections)
	if err != nil {
		return fmt.Errorf("failed to read sections file %s: %w", rankSections, err)
	}

	var sections []types.Section
	if err := json.Unmarshal(sectionsContent, &sections); err != nil {
		return fmt.Errorf("failed to unmarshal sections JSON: %w", err)
	}

	// 2. Load PersonaProfile
	profileContent, err := os.ReadFile(rankProfile)
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", rankProfile, err)
	}

	var profile types.PersonaProfile
	if err := json.Unmarshal(profileContent, &profile); err != nil {
		return fmt.Errorf("failed to unmarshal persona profile JSON: %w", err)
	}

	// 3. Score and rank
	scored := make([]types.ScoredSection, 0, len(sections))
	for _, sec := range sections {
		scored = append(scored, scoring.ScoreSection(sec, &profile))
	}
	ranked := ranking.Rank(scored, &profile)

	// 4. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked sections to JSON: %w", err)
	}

	if err := writeStepOutput(rankOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d sections to %s\n", len(ranked), rankOutput)

	return nil
}

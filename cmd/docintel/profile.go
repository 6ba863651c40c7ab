package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Midhun81790/project-1B/internal/persona"
	"github.com/Midhun81790/project-1B/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Build a persona profile from a role and a task",
	Long:  "Deterministically classifies a persona role and job-to-be-done into a domain and job type, producing a weighted-keyword PersonaProfile JSON.",
	RunE:  runProfile,
}

var (
	profileRole   string
	profileFocus  string
	profileTask   string
	profileOutput string
)

func init() {
	profileCmd.Flags().StringVarP(&profileRole, "persona-role", "r", "", "Persona role description, e.g. \"PhD Researcher in Computational Biology\" (required)")
	profileCmd.Flags().StringVar(&profileFocus, "persona-focus", "", "Optional persona focus area appended to the role")
	profileCmd.Flags().StringVarP(&profileTask, "task", "t", "", "Job-to-be-done description (required)")
	profileCmd.Flags().StringVarP(&profileOutput, "out", "o", "", "Path to output PersonaProfile JSON file (required)")

	if err := profileCmd.MarkFlagRequired("persona-role"); err != nil {
		panic(fmt.Sprintf("failed to mark persona-role flag as required: %v", err))
	}
	if err := profileCmd.MarkFlagRequired("task"); err != nil {
		panic(fmt.Sprintf("failed to mark task flag as required: %v", err))
	}
	if err := profileCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	profile := persona.Analyze(
		types.PersonaInput{Role: profileRole, Focus: profileFocus},
		types.JobInput{Task: profileTask},
	)

	jsonOutput, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal persona profile to JSON: %w", err)
	}

	if err := writeStepOutput(profileOutput, jsonOutput); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Profiled %s/%s (%s) to %s\n", profile.Domain, profile.Role, profile.JobType, profileOutput)

	return nil
}

// writeStepOutput writes a step artifact, creating the parent directory when
// needed.
func writeStepOutput(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Midhun81790/project-1B/internal/config"
	"github.com/Midhun81790/project-1B/internal/pipeline"
)

const timePrecision = 10 * time.Millisecond

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full collection analysis pipeline end-to-end",
	Long: `Orchestrates the entire analysis process: input loading -> document decoding -> persona profiling -> segmentation -> relevance scoring -> importance ranking -> subsection refinement -> report generation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runInput       string
	runOutput      string
	runTopSections int
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Directory containing the collection input file and documents")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Directory where output.json is written")
	runCommand.Flags().IntVar(&runTopSections, "top-sections", 0, "Number of top-ranked sections to report and refine")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("top-sections") {
		cfg.TopSections = runTopSections
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Output:      "output",
		TopSections: pipeline.DefaultTopSections,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}

	opts := pipeline.RunOptions{
		InputDir:    cfg.Input,
		OutputDir:   cfg.Output,
		TopSections: cfg.TopSections,
		Verbose:     cfg.Verbose,
	}

	result, err := pipeline.RunCollection(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Printf("\nDone in %s: %d documents (%d skipped), %d sections ranked, %d excerpts refined.\n",
		result.Elapsed.Round(timePrecision), result.DocumentsProcessed, result.DocumentsSkipped,
		result.SectionsRanked, result.ExcerptsRefined)
	fmt.Printf("Report written to %s\n", result.OutputPath)
	return nil
}

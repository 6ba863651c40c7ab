// Package main provides the entry point for the docintel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docintel",
	Short: "Persona-driven document collection analysis",
	Long:  "docintel extracts, scores, and ranks the passages of a document collection that matter most to a given persona and their task, producing a structured JSON report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the Resume Matcher CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume Matcher job ranking service",
	Long:  "Resume Matcher extracts skills or role recommendations from a resume and ranks a job posting corpus against it, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the resume_matcher version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("resume_matcher %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

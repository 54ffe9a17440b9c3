// Package main provides the entry point for the SkillVerify CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillverify",
	Short: "Student skill verification and readiness scoring engine",
	Long:  "SkillVerify aggregates public coding-platform signals into placement readiness scores, audits repositories for AI-generated code, and runs adaptive mock interviews.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

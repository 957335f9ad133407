// Package main provides the entry point for the resume parser service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume Parser HTTP API Server",
	Long:  "Resume Parser extracts structured fields (name, email, phone, skills, experience, education) from free-text resume content, with a fingerprint-keyed result cache.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

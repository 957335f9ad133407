package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/extractor"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var (
	parseFormat         string
	parseVerbose        bool
	parseValidateSchema bool
	parseConfigPath     string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume text file and print the extracted record",
	Long:  `Parse runs the same extraction pipeline as the HTTP endpoint against a local file and prints the structured record as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "txt", "Input format: txt or html")
	parseCmd.Flags().BoolVar(&parseVerbose, "verbose", false, "Print a formatted summary instead of raw JSON")
	parseCmd.Flags().BoolVar(&parseValidateSchema, "validate", false, "Validate the record against the published JSON schema")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(parseConfigPath)
	if err != nil {
		return err
	}

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text := string(raw)
	if parseFormat == "html" {
		text, err = ingestion.ExtractHTMLText(text)
		if err != nil {
			return err
		}
	}
	text = ingestion.CleanText(text)

	// One-shot invocation; the cache would never be read again.
	service := parser.NewService(extractor.New(vocab), nil, parser.Config{
		MinTextLength: cfg.MinTextLength,
		MaxTextLength: cfg.MaxTextLength,
	})

	result, err := service.Parse(text)
	if err != nil {
		return err
	}

	output, err := json.MarshalIndent(result.Record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if parseValidateSchema {
		if err := schemas.ValidateResumeRecord(output); err != nil {
			return err
		}
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMetadata(ingestion.NewMetadata(text, parseFormat))
		printer.PrintResumeRecord(&result.Record)
		return nil
	}

	fmt.Println(string(output))
	return nil
}

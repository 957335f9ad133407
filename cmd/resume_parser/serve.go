package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/cache"
	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/extractor"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the synchronous resume parsing endpoint and cache observability endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	resultCache := cache.New(cache.Config{
		TTL:           cfg.TTL(),
		SweepInterval: cfg.Sweep(),
	})

	service := parser.NewService(extractor.New(vocab), resultCache, parser.Config{
		MinTextLength: cfg.MinTextLength,
		MaxTextLength: cfg.MaxTextLength,
	})

	srv := server.New(server.Config{Port: cfg.Port}, service, resultCache)
	return srv.Start()
}

func loadVocabulary(cfg *config.Config) (*extractor.Vocabulary, error) {
	if cfg.VocabularyPath == "" {
		return nil, nil
	}
	vocab, err := extractor.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return vocab, nil
}

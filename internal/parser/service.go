// Package parser wires input validation, the result cache, and the extractor
// into the single synchronous parse operation exposed to callers.
package parser

import (
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-parser/internal/cache"
	"github.com/jonathan/resume-parser/internal/extractor"
	"github.com/jonathan/resume-parser/internal/types"
)

// Result is the outcome of a parse call, with cache provenance for logging
// and response metadata.
type Result struct {
	Record      types.ResumeRecord
	Fingerprint string
	FromCache   bool
}

// Service runs the parse flow: validate, look up by fingerprint, extract on a
// miss, store the result. Concurrent calls with identical text share a single
// extraction via singleflight.
type Service struct {
	extractor *extractor.Extractor
	cache     *cache.Cache
	group     singleflight.Group

	minTextLen int
	maxTextLen int
}

// Config holds service construction parameters. Zero length bounds use the
// package defaults.
type Config struct {
	MinTextLength int
	MaxTextLength int
}

// NewService creates a Service. A nil cache disables caching entirely; every
// call then runs a fresh extraction.
func NewService(ex *extractor.Extractor, c *cache.Cache, cfg Config) *Service {
	if ex == nil {
		ex = extractor.New(nil)
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = DefaultMinTextLength
	}
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = DefaultMaxTextLength
	}
	return &Service{
		extractor:  ex,
		cache:      c,
		minTextLen: cfg.MinTextLength,
		maxTextLen: cfg.MaxTextLength,
	}
}

// Parse validates the text, then returns the cached record for its
// fingerprint or runs a fresh extraction and caches it.
//
// Returns *ValidationError for rejected input and *extractor.ParsingError for
// internal extraction faults. The cache is never a source of failure.
func (s *Service) Parse(text string) (*Result, error) {
	if err := s.validate(text); err != nil {
		return nil, err
	}

	fp := cache.Fingerprint(text)

	if s.cache != nil {
		if record, ok := s.cache.Get(fp); ok {
			return &Result{Record: record, Fingerprint: fp, FromCache: true}, nil
		}
	}

	// Identical texts arriving concurrently share one extraction. The
	// fingerprint is the dedup key, so unrelated texts never wait on each
	// other.
	value, err, _ := s.group.Do(fp, func() (any, error) {
		record, err := s.extractor.Extract(text)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Put(fp, record)
		}
		return record, nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{Record: value.(types.ResumeRecord), Fingerprint: fp}, nil
}

// Vocabulary exposes the extractor's active keyword vocabulary for the
// introspection endpoint.
func (s *Service) Vocabulary() *extractor.Vocabulary {
	return s.extractor.Vocabulary()
}

func (s *Service) validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Message: "text is required"}
	}
	if len(text) < s.minTextLen {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text must be at least %d characters", s.minTextLen),
		}
	}
	if len(text) > s.maxTextLen {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text must be at most %d characters", s.maxTextLen),
		}
	}
	return nil
}

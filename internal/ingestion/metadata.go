package ingestion

import (
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/cache"
)

// Metadata describes an ingested résumé text.
type Metadata struct {
	Fingerprint string `json:"fingerprint"`
	Characters  int    `json:"characters"`
	Lines       int    `json:"lines"`
	Format      string `json:"format,omitempty"`
	Timestamp   string `json:"timestamp"` // RFC3339
}

// NewMetadata builds metadata for cleaned text. The fingerprint matches the
// cache key the parse service will use for the same text.
func NewMetadata(text, format string) *Metadata {
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	return &Metadata{
		Fingerprint: cache.Fingerprint(text),
		Characters:  len(text),
		Lines:       lines,
		Format:      format,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

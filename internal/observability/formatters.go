// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/cache"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of an extracted record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", valueOrDash(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", valueOrDash(record.Phone)))

	sb.WriteString(fmt.Sprintf("\nSkills (%d):\n", len(record.Skills)))
	for _, skill := range record.Skills {
		sb.WriteString(fmt.Sprintf("  - %s\n", skill))
	}

	sb.WriteString(fmt.Sprintf("\nExperience (%d):\n", len(record.Experience)))
	for _, exp := range record.Experience {
		sb.WriteString(fmt.Sprintf("  - %s\n", exp.Company))
	}

	sb.WriteString(fmt.Sprintf("\nEducation (%d):\n", len(record.Education)))
	for _, edu := range record.Education {
		sb.WriteString(fmt.Sprintf("  - %s\n", edu.Institution))
	}

	p.printBox("EXTRACTED RESUME RECORD", strings.TrimRight(sb.String(), "\n"))
}

// PrintMetadata outputs ingestion metadata for the parsed text.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	content := fmt.Sprintf("Fingerprint:  %s\nCharacters:   %d\nLines:        %d",
		meta.Fingerprint[:16]+"…", meta.Characters, meta.Lines)
	p.printBox("INGESTION", content)
}

// PrintCacheStats outputs a summary of the result cache.
func (p *Printer) PrintCacheStats(stats cache.Stats) {
	content := fmt.Sprintf("Entries:       %d\nTTL (seconds): %.0f\nApprox bytes:  %d",
		stats.Entries, stats.TTLSeconds, stats.ApproxBytes)
	p.printBox("RESULT CACHE", content)
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

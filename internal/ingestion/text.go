// Package ingestion normalizes raw résumé input before it reaches the
// extraction core: line-ending cleanup for plain text, markup stripping for
// HTML, and metadata about what was ingested.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	multiBlankLines = regexp.MustCompile(`\n\n+`)
)

// CleanText normalizes résumé text while preserving its line structure, which
// the extraction heuristics depend on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF/CR -> LF).
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		// Collapse runs of spaces/tabs; résumé exports from word processors
		// pad columns with them.
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

package extractor

import "strings"

// Section scan parameters. A header line triggers a forward scan over the
// next sectionScanWindow lines for the first body line whose length is
// strictly inside the bounds.
const (
	sectionScanWindow = 10
	minSectionBodyLen = 3
	maxSectionBodyLen = 100
)

// scanSections finds section header lines (any line containing one of the
// keywords, case-insensitive) and returns the first qualifying body line
// after each, truncated to max entries in scan order.
//
// Windows of nearby headers may overlap: a later header is still evaluated
// independently, so two headers within one window of each other can both
// emit the same or adjacent body lines. Callers treat the output as
// best-effort section detection, not a partition of the document.
func scanSections(lines []string, keywords []string, max int) []string {
	entries := make([]string, 0)

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), keywords) {
			continue
		}

		// Forward scan starts on the line after the header.
		for j := i + 1; j <= i+sectionScanWindow && j < len(lines); j++ {
			body := lines[j]
			if len(body) > minSectionBodyLen && len(body) < maxSectionBodyLen {
				entries = append(entries, body)
				break
			}
		}

		if len(entries) >= max {
			break
		}
	}

	if len(entries) > max {
		entries = entries[:max]
	}
	return entries
}

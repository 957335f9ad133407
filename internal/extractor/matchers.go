package extractor

import (
	"regexp"

	"github.com/jonathan/resume-parser/internal/types"
)

// Field matchers are independent, pure predicates over a line or whole-text
// scope, composed by Extract. Each can be replaced with a stronger matcher
// without touching the orchestration.
var (
	// emailRegex matches an ASCII local part, dotted domain labels, and a
	// final label of at least two letters.
	emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phoneRegex matches loose North-American style numbers: optional country
	// code, optional parenthesized area code, space/dot/hyphen separators.
	phoneRegex = regexp.MustCompile(`(\+\d{1,3}[-. ]?)?(\(\d{3}\)[-. ]?|\d{3}[-. ])?\d{3}[-. ]\d{4}`)

	// nameRegex matches exactly two title-case words. This is an intentionally
	// narrow heuristic, not a general name detector.
	nameRegex = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
)

// Name line length bounds (exclusive).
const (
	minNameLen = 2
	maxNameLen = 50
)

// matchEmail returns the first email-shaped substring across the given lines,
// or "" if none is found.
func matchEmail(lines []string) string {
	for _, line := range lines {
		if m := emailRegex.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// matchPhone returns the first phone-shaped substring across the given lines,
// or "" if none is found.
func matchPhone(lines []string) string {
	for _, line := range lines {
		if m := phoneRegex.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// isNameLine reports whether a single trimmed line qualifies as a candidate
// name: two title-case words, within length bounds, and not itself an email
// or phone match.
func isNameLine(line string) bool {
	if len(line) <= minNameLen || len(line) >= maxNameLen {
		return false
	}
	if !nameRegex.MatchString(line) {
		return false
	}
	if emailRegex.MatchString(line) || phoneRegex.MatchString(line) {
		return false
	}
	return true
}

// matchName returns the first qualifying name line, or types.UnknownName.
func matchName(lines []string) string {
	for _, line := range lines {
		if isNameLine(line) {
			return line
		}
	}
	return types.UnknownName
}

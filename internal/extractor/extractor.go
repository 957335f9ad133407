// Package extractor turns free-text résumé content into a structured record
// using deterministic, line-oriented heuristics: regex field matchers for
// email/phone/name, vocabulary keyword classification for skills, and a
// windowed section scan for experience and education.
//
// The heuristics are an explainable stand-in for a learned extractor; the
// Extract contract is the stable surface, so a stronger implementation can be
// swapped in without affecting callers or the result cache.
package extractor

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Placeholder values for section fields the heuristics cannot recover.
const (
	positionPlaceholder    = "Position"
	descriptionPlaceholder = "Experience details"
	degreePlaceholder      = "Degree"
)

// Extractor extracts structured résumé records from plain text. It holds no
// mutable state; a single instance is safe for concurrent use.
type Extractor struct {
	vocab *Vocabulary
}

// New creates an Extractor. A nil vocabulary selects the built-in defaults.
func New(vocab *Vocabulary) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	vocab.normalize()
	return &Extractor{vocab: vocab}
}

// Vocabulary returns the active keyword vocabulary.
func (e *Extractor) Vocabulary() *Vocabulary {
	return e.vocab
}

// Extract parses résumé text into a ResumeRecord. Callers are expected to
// have rejected empty input already; Extract itself does not re-validate
// length bounds.
//
// Absent fields come back as defaults ("" scalars, "Unknown" name, empty
// sections). An error is returned only on an unexpected internal fault, as
// *ParsingError.
func (e *Extractor) Extract(text string) (record types.ResumeRecord, err error) {
	// The matchers are pure functions over immutable input, so a panic here
	// is always a defect. Surface it as a ParsingError instead of killing
	// the caller.
	defer func() {
		if r := recover(); r != nil {
			record = types.NewResumeRecord()
			err = &ParsingError{Message: fmt.Sprintf("extraction panicked: %v", r)}
		}
	}()

	lines := splitLines(text)

	record = types.NewResumeRecord()
	record.Email = matchEmail(lines)
	record.Phone = matchPhone(lines)
	record.Name = matchName(lines)
	record.Skills = extractSkills(lines, e.vocab)

	for _, company := range scanSections(lines, e.vocab.Experience, types.MaxExperienceEntries) {
		record.Experience = append(record.Experience, types.Experience{
			Company:     company,
			Position:    positionPlaceholder,
			Description: descriptionPlaceholder,
		})
	}

	for _, institution := range scanSections(lines, e.vocab.Education, types.MaxEducationEntries) {
		record.Education = append(record.Education, types.Education{
			Institution: institution,
			Degree:      degreePlaceholder,
		})
	}

	return record, nil
}

// splitLines returns the non-empty, trimmed lines of text, the shared input
// shape for all matchers.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

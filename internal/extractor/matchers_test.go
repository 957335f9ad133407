package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestMatchEmail(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"Simple address", []string{"john.doe@example.com"}, "john.doe@example.com"},
		{"Embedded in line", []string{"Contact: jane+cv@mail.example.org (preferred)"}, "jane+cv@mail.example.org"},
		{"First of several", []string{"a@example.com", "b@example.com"}, "a@example.com"},
		{"Subdomain", []string{"dev@eng.example.co.uk"}, "dev@eng.example.co.uk"},
		{"Missing TLD", []string{"john@localhost"}, ""},
		{"Single-letter TLD", []string{"john@example.c"}, ""},
		{"No email", []string{"John Doe", "555-123-4567"}, ""},
		{"Empty input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchEmail(tt.lines))
		})
	}
}

func TestMatchPhone(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"Country code with hyphens", []string{"+1-555-123-4567"}, "+1-555-123-4567"},
		{"Parenthesized area code", []string{"(555) 123-4567"}, "(555) 123-4567"},
		{"Dotted", []string{"555.123.4567"}, "555.123.4567"},
		{"Bare seven digits", []string{"123-4567"}, "123-4567"},
		{"Embedded in line", []string{"Phone: 555 123 4567 (mobile)"}, "555 123 4567"},
		{"No separator at all", []string{"5551234567"}, ""},
		{"No phone", []string{"John Doe", "john@example.com"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchPhone(tt.lines))
		})
	}
}

func TestIsNameLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"Two title-case words", "John Doe", true},
		{"Lowercase first word", "john Doe", false},
		{"All caps word", "JOHN Doe", false},
		{"Three words", "John Michael Doe", false},
		{"Single word", "John", false},
		{"Trailing punctuation", "John Doe.", false},
		{"Contains digits", "John Doe2", false},
		// The two-word shape plus an embedded contact match is rejected.
		{"Phone-shaped line", "555-123-4567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isNameLine(tt.line))
		})
	}
}

func TestMatchName(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"First qualifying line wins", []string{"Curriculum Vitae", "Jane Smith", "John Doe"}, "Curriculum Vitae"},
		{"Skips non-matching lines", []string{"RESUME", "123-4567", "Jane Smith"}, "Jane Smith"},
		{"No qualifying line", []string{"RESUME", "john@example.com", "skills: python"}, types.UnknownName},
		{"Empty input", nil, types.UnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchName(tt.lines))
		})
	}
}

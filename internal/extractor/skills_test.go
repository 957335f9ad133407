package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			name:     "Whole line is the skill token",
			lines:    []string{"Skills: JavaScript, React, Node.js, Python"},
			expected: []string{"skills: javascript, react, node.js, python"},
		},
		{
			name:     "Dedup is case-insensitive via normalization",
			lines:    []string{"Python and Django", "PYTHON AND DJANGO"},
			expected: []string{"python and django"},
		},
		{
			name:     "First-seen order preserved",
			lines:    []string{"Kubernetes operations", "AWS and Terraform", "Kubernetes operations"},
			expected: []string{"kubernetes operations", "aws and terraform"},
		},
		{
			name:     "Keyword matches as substring",
			lines:    []string{"Built dashboards in TypeScript"},
			expected: []string{"built dashboards in typescript"},
		},
		{
			name:     "No keyword, no skill",
			lines:    []string{"John Doe", "Some hobby text"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSkills(tt.lines, vocab))
		})
	}
}

package extractor

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Vocabulary holds the keyword lists driving heuristic classification, keyed
// by category. It ships as data rather than inline literals so the heuristics
// can be tuned without touching control flow.
type Vocabulary struct {
	// Skills keywords: language names, frameworks, cloud/infra tools,
	// methodology terms. A line containing any of them is treated as a
	// skill line.
	Skills []string `json:"skills"`

	// Experience and Education keywords mark section header lines.
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

// DefaultVocabulary returns the built-in keyword lists.
// Very short tokens ("go", "c", "r") are deliberately absent: matching is by
// substring over whole lines, and they would fire on almost any text.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Skills: []string{
			// Languages
			"javascript", "typescript", "python", "java", "golang", "ruby",
			"php", "swift", "kotlin", "rust", "scala", "c++", "c#",
			// Frameworks
			"react", "angular", "vue", "node.js", "express", "django",
			"flask", "spring", "laravel", "graphql",
			// Data stores and messaging
			"sql", "mysql", "postgresql", "mongodb", "redis",
			"elasticsearch", "kafka",
			// Cloud and infra
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"ansible", "jenkins", "linux", "git", "ci/cd",
			// Methodology
			"agile", "scrum", "kanban", "tdd", "machine learning",
			// Web basics
			"html", "css",
		},
		Experience: []string{"experience", "work", "employment", "career"},
		Education:  []string{"education", "degree", "university", "college", "school"},
	}
}

// LoadVocabulary reads a vocabulary override from a JSON file. Categories left
// empty in the file fall back to the defaults.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var vocab Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	defaults := DefaultVocabulary()
	if len(vocab.Skills) == 0 {
		vocab.Skills = defaults.Skills
	}
	if len(vocab.Experience) == 0 {
		vocab.Experience = defaults.Experience
	}
	if len(vocab.Education) == 0 {
		vocab.Education = defaults.Education
	}

	vocab.normalize()
	return &vocab, nil
}

// normalize lower-cases and trims all keywords so matching can assume
// lower-case input.
func (v *Vocabulary) normalize() {
	for _, list := range [][]string{v.Skills, v.Experience, v.Education} {
		for i, kw := range list {
			list[i] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
}

// containsAny reports whether the lower-cased line contains at least one of
// the keywords.
func containsAny(lowerLine string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lowerLine, kw) {
			return true
		}
	}
	return false
}

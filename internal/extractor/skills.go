package extractor

import "strings"

// extractSkills scans every line against the skill vocabulary. A line
// containing at least one keyword contributes the entire line (lower-cased and
// trimmed) as one skill token. Duplicates after normalization are dropped,
// preserving first-seen order.
func extractSkills(lines []string, vocab *Vocabulary) []string {
	skills := make([]string, 0)
	seen := make(map[string]bool)

	for _, line := range lines {
		normalized := strings.ToLower(strings.TrimSpace(line))
		if !containsAny(normalized, vocab.Skills) {
			continue
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		skills = append(skills, normalized)
	}

	return skills
}

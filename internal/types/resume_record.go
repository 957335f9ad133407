// Package types defines the structured résumé data model shared across packages.
package types

// UnknownName is the fallback value when no candidate name could be detected.
const UnknownName = "Unknown"

// Limits on the structured sections of a ResumeRecord.
const (
	MaxExperienceEntries = 5
	MaxEducationEntries  = 3
)

// Experience represents a single work experience entry.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ResumeRecord is the structured output of résumé extraction.
// Scalar fields are always present: unmatched values are "" (or UnknownName
// for Name), never absent.
type ResumeRecord struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// NewResumeRecord returns a record with defaults applied and empty (non-nil)
// section slices, so JSON output always contains arrays rather than null.
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		Name:       UnknownName,
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
	}
}

// ApproxSize returns a rough in-memory footprint of the record in bytes,
// counting string payloads only. Used for cache statistics.
func (r ResumeRecord) ApproxSize() int {
	size := len(r.Name) + len(r.Email) + len(r.Phone)
	for _, s := range r.Skills {
		size += len(s)
	}
	for _, e := range r.Experience {
		size += len(e.Company) + len(e.Position) + len(e.Duration) + len(e.Description)
	}
	for _, e := range r.Education {
		size += len(e.Institution) + len(e.Degree) + len(e.Field) + len(e.Year)
	}
	return size
}

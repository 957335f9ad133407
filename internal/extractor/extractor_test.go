package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com
+1-555-123-4567
Skills: JavaScript, React, Node.js, Python
Experience:
Software Engineer at Tech Corp (2020-2023)
Education:
Bachelor of Science in Computer Science
University of Technology (2020)`

func TestExtractEndToEnd(t *testing.T) {
	record, err := New(nil).Extract(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", record.Name)
	assert.Equal(t, "john.doe@example.com", record.Email)
	assert.Equal(t, "+1-555-123-4567", record.Phone)
	assert.Equal(t, []string{"skills: javascript, react, node.js, python"}, record.Skills)

	require.Len(t, record.Experience, 1)
	assert.Equal(t, types.Experience{
		Company:     "Software Engineer at Tech Corp (2020-2023)",
		Position:    "Position",
		Description: "Experience details",
	}, record.Experience[0])

	// "University of Technology (2020)" is itself an education header with
	// nothing after it, so only the first header emits an entry.
	require.Len(t, record.Education, 1)
	assert.Equal(t, types.Education{
		Institution: "Bachelor of Science in Computer Science",
		Degree:      "Degree",
	}, record.Education[0])
}

func TestExtractIdempotent(t *testing.T) {
	e := New(nil)

	first, err := e.Extract(sampleResume)
	require.NoError(t, err)
	second, err := e.Extract(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, first, second, "extraction must be deterministic")
}

func TestExtractDefaults(t *testing.T) {
	record, err := New(nil).Extract("just some plain text\nwith nothing to find 12")
	require.NoError(t, err)

	assert.Equal(t, types.UnknownName, record.Name)
	assert.Equal(t, "", record.Email)
	assert.Equal(t, "", record.Phone)
	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Experience)
	assert.Empty(t, record.Education)
}

func TestExtractBounding(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "Experience:\nEmployer number %d\n", i)
	}
	for i := 0; i < 6; i++ {
		fmt.Fprintf(&sb, "Education:\nInstitution number %d\n", i)
	}

	record, err := New(nil).Extract(sb.String())
	require.NoError(t, err)

	assert.Len(t, record.Experience, types.MaxExperienceEntries)
	assert.Len(t, record.Education, types.MaxEducationEntries)
	assert.Equal(t, "Employer number 0", record.Experience[0].Company)
	assert.Equal(t, "Institution number 0", record.Education[0].Institution)
}

func TestExtractSkillDedupAcrossLines(t *testing.T) {
	text := "Jane Smith\n  Python and Flask  \npython and flask"

	record, err := New(nil).Extract(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"python and flask"}, record.Skills)
}

func TestExtractHandlesCRLF(t *testing.T) {
	record, err := New(nil).Extract("Jane Smith\r\njane@example.com\r\n")
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", record.Name)
	assert.Equal(t, "jane@example.com", record.Email)
}

func TestExtractCustomVocabulary(t *testing.T) {
	vocab := &Vocabulary{
		Skills:     []string{"cobol"},
		Experience: []string{"employment"},
		Education:  []string{"schooling"},
	}

	record, err := New(vocab).Extract("COBOL maintenance\nEmployment\nBank of Legacy Systems")
	require.NoError(t, err)

	assert.Equal(t, []string{"cobol maintenance"}, record.Skills)
	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Bank of Legacy Systems", record.Experience[0].Company)
	assert.Empty(t, record.Education)
}

package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/extractor"
)

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(ResumeRecordSchemaPath)
	require.NotEmpty(t, path, "schema should resolve from the package directory")
}

func TestValidateResumeRecordValid(t *testing.T) {
	record, err := extractor.New(nil).Extract(`John Doe
john.doe@example.com
Skills: Python, Docker
Experience:
Backend Engineer at Acme Inc`)
	require.NoError(t, err)

	data, err := json.Marshal(record)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeRecord(data), "extractor output must satisfy the published schema")
}

func TestValidateResumeRecordDefaults(t *testing.T) {
	record, err := extractor.New(nil).Extract("nothing extractable here today")
	require.NoError(t, err)

	data, err := json.Marshal(record)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeRecord(data), "all-default record must satisfy the schema")
}

func TestValidateResumeRecordViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Missing required fields", `{"name": "John Doe"}`},
		{"Wrong type for skills", `{"name":"x","email":"","phone":"","skills":"python","experience":[],"education":[]}`},
		{"Too many education entries", `{"name":"x","email":"","phone":"","skills":[],"experience":[],
			"education":[
				{"institution":"a","degree":"Degree"},
				{"institution":"b","degree":"Degree"},
				{"institution":"c","degree":"Degree"},
				{"institution":"d","degree":"Degree"}
			]}`},
		{"Unknown top-level field", `{"name":"x","email":"","phone":"","skills":[],"experience":[],"education":[],"extra":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumeRecord([]byte(tt.doc))
			require.Error(t, err)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

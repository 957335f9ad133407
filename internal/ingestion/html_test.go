package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLText(t *testing.T) {
	html := `<html><head><title>CV</title><style>p{color:red}</style></head>
<body>
  <h1>John Doe</h1>
  <p>john.doe@example.com</p>
  <script>console.log("tracker")</script>
  <div>
    <ul>
      <li>Skills: Python, Docker</li>
      <li>Kubernetes</li>
    </ul>
  </div>
</body></html>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	assert.Equal(t, "John Doe\njohn.doe@example.com\nSkills: Python, Docker\nKubernetes", text)
}

func TestExtractHTMLTextNoBlocks(t *testing.T) {
	text, err := ExtractHTMLText("John Doe, john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John Doe, john@example.com", text)
}

func TestExtractHTMLTextScriptOnly(t *testing.T) {
	text, err := ExtractHTMLText("<html><body><script>var x = 1;</script></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

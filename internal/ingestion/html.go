package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText strips markup from an HTML résumé and returns cleaned plain
// text, one block-level element per line. The extraction core only ever sees
// plain text; this runs when a caller tags the request as HTML.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Drop non-content elements entirely.
	doc.Find("script, style, noscript, head").Remove()

	const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, td, div, section, article"

	var sb strings.Builder
	blocks := doc.Find(blockSelector)
	if blocks.Length() == 0 {
		// No block structure at all; fall back to the document text.
		return CleanText(doc.Text()), nil
	}

	blocks.Each(func(_ int, s *goquery.Selection) {
		// Only leaf-level blocks contribute, otherwise nested containers
		// repeat their descendants' text.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	return CleanText(sb.String()), nil
}

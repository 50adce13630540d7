package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML flattens feed summary markup to plain text with collapsed
// whitespace. Malformed markup falls back to the trimmed input.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Watchtower study-article markup.
const (
	// paragraphBodySelector matches study paragraphs.
	paragraphBodySelector = "p.sb"

	// paragraphNumberSelector matches the embedded paragraph-number
	// markers, which are navigation chrome rather than content.
	paragraphNumberSelector = ".parNum"
)

// extractWatchtower reads every study paragraph in document order, strips
// the paragraph-number markers, and joins the cleaned paragraph texts with
// single newlines.
func extractWatchtower(content string) (string, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return "", err
	}

	var paragraphs []string
	doc.Find(paragraphBodySelector).Each(func(_ int, sel *goquery.Selection) {
		sel.Find(paragraphNumberSelector).Remove()
		paragraphs = append(paragraphs, cleanText(sel.Text()))
	})

	return strings.Join(paragraphs, "\n"), nil
}

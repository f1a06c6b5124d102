package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Study-Bible markup.
const (
	// chromeSelector matches footnote and back-reference anchors, which
	// are navigation chrome rather than content.
	chromeSelector = ".fn, .b"

	// softBreakSelector matches soft-line and size-variant boundaries.
	// Their markup carries no whitespace of its own, so removing tags
	// would fuse the words on either side.
	softBreakSelector = ".sl, .sz"
)

// newlineEdge matches horizontal whitespace adjacent to a newline.
var newlineEdge = regexp.MustCompile(`[^\S\n]*\n[^\S\n]*`)

// extractStudyHTML parses a raw content fragment and extracts its text
// with the study-Bible strategy.
func extractStudyHTML(content string) (string, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return "", err
	}
	return ExtractStudySelection(doc.Selection), nil
}

// ExtractStudySelection extracts study-Bible text from an existing
// selection, so that callers already inside a larger traversal can reuse
// their parsed document instead of re-parsing the fragment.
//
// The selection's document is mutated in place: chrome anchors are removed
// and a space text node is inserted after every soft-break boundary.
// Callers must pass a disposable or already-scoped context.
func ExtractStudySelection(sel *goquery.Selection) string {
	sel.Find(chromeSelector).Remove()

	sel.Find(softBreakSelector).Each(func(_ int, s *goquery.Selection) {
		s.AfterNodes(&html.Node{Type: html.TextNode, Data: " "})
	})

	text := cleanText(sel.Text())
	return newlineEdge.ReplaceAllString(text, "\n")
}

// Package goquery implements DOM-dependent parts of wolref using CSS
// selector traversal: the text-extraction strategies for each publication
// kind and cross-reference anchor collection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pbartosik/wolref"
)

// Ensure Extractor implements wolref.TextExtractor at compile time.
var _ wolref.TextExtractor = (*Extractor)(nil)

// Extractor turns publication content fragments into plain text. The
// strategy is selected by publication kind; the kind set is closed, so the
// dispatch is exhaustive and has no error path of its own.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract applies the strategy matching kind to the raw content fragment.
func (e *Extractor) Extract(kind wolref.Kind, content string) (string, error) {
	switch kind {
	case wolref.KindWatchtower:
		return extractWatchtower(content)
	case wolref.KindStudyBible:
		return extractStudyHTML(content)
	default:
		return extractPlain(content)
	}
}

// parseFragment parses an HTML content fragment.
func parseFragment(content string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, wolref.Errorf(wolref.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cleanText normalizes non-breaking spaces to regular spaces and trims
// surrounding whitespace.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(s)
}

package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pbartosik/wolref"
)

// referenceAnchorSelector matches cross-reference anchors in page markup.
// The same class marks navigation chrome inside fetched payload fragments;
// there it is removed by the study-Bible strategy instead.
const referenceAnchorSelector = "a.b"

// Anchors collects the cross-reference anchors within sel in document
// order. An anchor without an href attribute indicates broken source
// markup and returns EINVALID before any resolution work starts.
func Anchors(sel *goquery.Selection) ([]wolref.AnchorReference, error) {
	var anchors []wolref.AnchorReference
	var err error

	sel.Find(referenceAnchorSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		label := strings.TrimSpace(s.Text())

		href, ok := s.Attr("href")
		if !ok {
			err = wolref.Errorf(wolref.EINVALID, "reference anchor %q missing href", label)
			return false
		}

		anchors = append(anchors, wolref.AnchorReference{Label: label, Href: href})
		return true
	})

	if err != nil {
		return nil, err
	}
	return anchors, nil
}

// AnchorsHTML parses an HTML fragment and collects its cross-reference
// anchors.
func AnchorsHTML(content string) ([]wolref.AnchorReference, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return nil, err
	}
	return Anchors(doc.Selection)
}

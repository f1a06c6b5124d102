package goquery

import "regexp"

// newlineRuns matches runs of two or more newlines.
var newlineRuns = regexp.MustCompile(`\n{2,}`)

// extractPlain reads the full text of a fragment, cleans it, and collapses
// runs of newlines into one. It is the strategy for every publication
// without a more specific one.
func extractPlain(content string) (string, error) {
	doc, err := parseFragment(content)
	if err != nil {
		return "", err
	}

	text := cleanText(doc.Text())
	return newlineRuns.ReplaceAllString(text, "\n"), nil
}

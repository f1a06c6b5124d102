package scrape

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pbartosik/wolref"
	wolquery "github.com/pbartosik/wolref/goquery"
)

// Bible chapter page markup.
const (
	chapterBodySelector = "#bibleText"
	verseSelector       = ".v"
	verseLabelSelector  = ".vl"
)

// BibleIndex lists the resolved cross references of one chapter, verse by
// verse. Verses without any reference anchor are omitted.
type BibleIndex struct {
	Title     string                     `json:"title"`
	SourceURL string                     `json:"sourceUrl"`
	Verses    []wolref.SectionReferences `json:"verses"`
	Shared    map[string]string          `json:"sharedMnemonicReferences"`
}

// BibleIndexScraper builds a passage index for a Bible chapter page.
type BibleIndexScraper struct {
	Fetcher   wolref.Fetcher
	Documents wolref.DocumentResolver
}

// Scrape fetches the chapter page at url and resolves the cross
// references of every verse that has any.
func (s *BibleIndexScraper) Scrape(ctx context.Context, url string) (*BibleIndex, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wolref.Errorf(wolref.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find(chapterBodySelector).First()
	if body.Length() == 0 {
		return nil, wolref.Errorf(wolref.ENOTFOUND, "no chapter text in %s", url)
	}

	title := strings.TrimSpace(doc.Find(articleTitleSelector).First().Text())

	sections, err := verseSections(body)
	if err != nil {
		return nil, err
	}

	refs, err := s.Documents.ResolveDocument(ctx, sections)
	if err != nil {
		return nil, err
	}

	return &BibleIndex{
		Title:     title,
		SourceURL: url,
		Verses:    refs.Sections,
		Shared:    refs.Shared,
	}, nil
}

// verseSections builds one section per verse block that contains at least
// one reference anchor. The section title is the verse's own number label,
// falling back to its ordinal position in the chapter.
func verseSections(body *goquery.Selection) ([]wolref.Section, error) {
	var sections []wolref.Section
	var verseErr error

	body.Find(verseSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		anchors, err := wolquery.Anchors(sel)
		if err != nil {
			verseErr = err
			return false
		}
		if len(anchors) == 0 {
			return true
		}

		label := strings.TrimSpace(sel.Find(verseLabelSelector).First().Text())
		if label == "" {
			label = strconv.Itoa(i + 1)
		}

		sections = append(sections, wolref.Section{
			Title:   label,
			Anchors: anchors,
		})
		return true
	})

	if verseErr != nil {
		return nil, verseErr
	}
	return sections, nil
}

// Package scrape implements the two consumers of the resolution engine:
// article content extraction and the Bible passage index. Both locate
// reference anchors in a fetched page, hand them to the engine as ordered
// sections, and embed the resolved output in their own result documents.
package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/pbartosik/wolref"
	wolquery "github.com/pbartosik/wolref/goquery"
)

// Article page markup.
const (
	articleBodySelector    = "#article"
	articleSectionSelector = ".section"
	articleTitleSelector   = "h1"
	sectionTitleSelector   = "h2"
)

// Article is the structured result of scraping one article page.
type Article struct {
	Title       string                     `json:"title"`
	SourceURL   string                     `json:"sourceUrl"`
	Content     string                     `json:"content"` // Markdown
	ContentHash string                     `json:"contentHash"`
	References  *wolref.DocumentReferences `json:"references"`
}

// ArticleScraper extracts article content together with its resolved
// cross references.
type ArticleScraper struct {
	Fetcher   wolref.Fetcher
	Converter wolref.Converter
	Documents wolref.DocumentResolver
}

// Scrape fetches the article page at url, converts its body to Markdown,
// and resolves every cross-reference anchor it contains.
func (s *ArticleScraper) Scrape(ctx context.Context, url string) (*Article, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wolref.Errorf(wolref.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find(articleBodySelector).First()
	if body.Length() == 0 {
		return nil, wolref.Errorf(wolref.ENOTFOUND, "no article body in %s", url)
	}

	title := strings.TrimSpace(doc.Find(articleTitleSelector).First().Text())

	sections, err := articleSections(body)
	if err != nil {
		return nil, err
	}

	bodyHTML, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, wolref.Errorf(wolref.EINTERNAL, "failed to render article body: %v", err)
	}

	content, err := s.Converter.Convert(bodyHTML)
	if err != nil {
		return nil, err
	}

	refs, err := s.Documents.ResolveDocument(ctx, sections)
	if err != nil {
		return nil, err
	}

	return &Article{
		Title:       title,
		SourceURL:   url,
		Content:     content,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(content)),
		References:  refs,
	}, nil
}

// articleSections groups the body's reference anchors by section element.
// A body without section elements becomes a single untitled section.
func articleSections(body *goquery.Selection) ([]wolref.Section, error) {
	sectionSel := body.Find(articleSectionSelector)
	if sectionSel.Length() == 0 {
		anchors, err := wolquery.Anchors(body)
		if err != nil {
			return nil, err
		}
		return []wolref.Section{{Anchors: anchors}}, nil
	}

	var sections []wolref.Section
	var sectionErr error

	sectionSel.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchors, err := wolquery.Anchors(sel)
		if err != nil {
			sectionErr = err
			return false
		}
		sections = append(sections, wolref.Section{
			Title:   strings.TrimSpace(sel.Find(sectionTitleSelector).First().Text()),
			Anchors: anchors,
		})
		return true
	})

	if sectionErr != nil {
		return nil, sectionErr
	}
	return sections, nil
}

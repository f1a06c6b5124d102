package scrape_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/pbartosik/wolref"
	"github.com/pbartosik/wolref/mock"
	"github.com/pbartosik/wolref/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<html><body>
<h1>Keep On the Watch</h1>
<div id="article">
<div class="section"><h2>Opening</h2><p>See <a class="b" href="/en/wol/bc/1">Ps 83:18</a>.</p></div>
<div class="section"><h2>Body</h2><p><a class="b" href="/en/wol/bc/2">Joh 17:3</a> and <a class="b" href="/en/wol/bc/1">Ps 83:18</a>.</p></div>
</div>
</body></html>`

func TestArticleScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("builds sections from article markup and embeds resolved references", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.com/article", url)
				return articlePage, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Contains(t, html, "Ps 83:18")
				return "# markdown body", nil
			},
		}

		var gotSections []wolref.Section
		refs := &wolref.DocumentReferences{Shared: map[string]string{}}
		documents := &mock.DocumentResolver{
			ResolveDocumentFn: func(_ context.Context, sections []wolref.Section) (*wolref.DocumentReferences, error) {
				gotSections = sections
				return refs, nil
			},
		}

		s := &scrape.ArticleScraper{Fetcher: fetcher, Converter: converter, Documents: documents}

		article, err := s.Scrape(context.Background(), "https://example.com/article")
		require.NoError(t, err)

		assert.Equal(t, "Keep On the Watch", article.Title)
		assert.Equal(t, "https://example.com/article", article.SourceURL)
		assert.Equal(t, "# markdown body", article.Content)
		assert.Equal(t, fmt.Sprintf("%016x", xxhash.Sum64String("# markdown body")), article.ContentHash)
		assert.Same(t, refs, article.References)

		require.Len(t, gotSections, 2)
		assert.Equal(t, "Opening", gotSections[0].Title)
		require.Len(t, gotSections[0].Anchors, 1)
		assert.Equal(t, "Ps 83:18", gotSections[0].Anchors[0].Label)
		assert.Equal(t, "Body", gotSections[1].Title)
		require.Len(t, gotSections[1].Anchors, 2)
		assert.Equal(t, "Joh 17:3", gotSections[1].Anchors[0].Label)
		assert.Equal(t, "Ps 83:18", gotSections[1].Anchors[1].Label)
	})

	t.Run("body without section elements becomes one section", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><div id="article"><p><a class="b" href="/en/wol/bc/1">Ps 83:18</a></p></div></body></html>`

		fetcher := &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) { return page, nil }}
		converter := &mock.Converter{ConvertFn: func(string) (string, error) { return "md", nil }}

		var gotSections []wolref.Section
		documents := &mock.DocumentResolver{
			ResolveDocumentFn: func(_ context.Context, sections []wolref.Section) (*wolref.DocumentReferences, error) {
				gotSections = sections
				return &wolref.DocumentReferences{}, nil
			},
		}

		s := &scrape.ArticleScraper{Fetcher: fetcher, Converter: converter, Documents: documents}

		_, err := s.Scrape(context.Background(), "https://example.com/a")
		require.NoError(t, err)

		require.Len(t, gotSections, 1)
		assert.Empty(t, gotSections[0].Title)
		require.Len(t, gotSections[0].Anchors, 1)
	})

	t.Run("missing article body", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			return `<html><body><p>nothing here</p></body></html>`, nil
		}}

		s := &scrape.ArticleScraper{Fetcher: fetcher}

		_, err := s.Scrape(context.Background(), "https://example.com/a")
		assert.Equal(t, wolref.ENOTFOUND, wolref.ErrorCode(err))
	})

	t.Run("fetch failure passes through", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			return "", wolref.Errorf(wolref.EUNAVAILABLE, "HTTP 503")
		}}

		s := &scrape.ArticleScraper{Fetcher: fetcher}

		_, err := s.Scrape(context.Background(), "https://example.com/a")
		assert.Equal(t, wolref.EUNAVAILABLE, wolref.ErrorCode(err))
	})
}

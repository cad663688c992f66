package transfermarkt

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"mercato-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

type SearchResult struct {
	Name       string
	ProfileUrl string
}

// Search runs the site's quick search. Callers are expected to have
// replaced spaces with "+" already; the "+" separators go through
// untouched, everything between them is percent-encoded.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer span.End()

	searchPath := fmt.Sprintf("/schnellsuche/ergebnis/schnellsuche?query=%s", escapeQuery(query))
	slog.DebugContext(ctx, "searching", "query", query)

	res, err := c.Http.R().
		SetContext(ctx).
		Get(searchPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch search page")
		return nil, err
	}
	if res.StatusCode() >= 400 {
		err = fmt.Errorf("search %q: status %d", query, res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "search returned error status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse search html")
		return nil, err
	}

	return c.parseSearchResults(doc), nil
}

// escapeQuery percent-encodes each "+"-separated word of a quick-search
// query. Escaping the query wholesale would turn the separators into
// "%2B", which the endpoint treats as a literal plus.
func escapeQuery(query string) string {
	words := strings.Split(query, "+")
	for i, word := range words {
		words[i] = url.QueryEscape(word)
	}
	return strings.Join(words, "+")
}

func (c *Client) parseSearchResults(doc *goquery.Document) []SearchResult {
	var results []SearchResult
	doc.Find("table.items > tbody > tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("td.hauptlink a").First()
		if link.Length() == 0 {
			return
		}
		name := htmlutil.CleanText(link)
		if name == "" {
			return
		}
		profileUrl := htmlutil.AbsoluteHref(c.BaseUrl, link)
		if profileUrl == "" {
			return
		}
		results = append(results, SearchResult{
			Name:       name,
			ProfileUrl: profileUrl,
		})
	})
	return results
}

package transfermarkt

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"mercato-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// Profile is the header block of a player page. Fields are empty when the
// corresponding element is absent; the caller decides on fallbacks.
type Profile struct {
	Name        string
	MarketValue string
	ImageUrl    string
	Url         string
}

// RumorRow is one unfiltered row of the rumor table. Percentage is 0 when
// the badge is absent or unparsable.
type RumorRow struct {
	Title      string
	Date       string
	Content    string
	Link       string
	Percentage float64
}

// FetchProfile loads a player page through the configured fetcher and
// extracts the header block plus every rumor row. A missing rumor section
// is not an error, it yields zero rows.
func (c *Client) FetchProfile(ctx context.Context, profileUrl string) (Profile, []RumorRow, error) {
	ctx, span := tracer.Start(ctx, "client:FetchProfile")
	defer span.End()

	html, err := c.fetcher.Fetch(ctx, profileUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch profile page")
		return Profile{}, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse profile html")
		return Profile{}, nil, err
	}

	profile := c.parseProfileHeader(doc)
	profile.Url = profileUrl
	rumors := c.parseRumorRows(ctx, doc)
	return profile, rumors, nil
}

func (c *Client) parseProfileHeader(doc *goquery.Document) Profile {
	name := htmlutil.CleanText(doc.Find("h1.data-header__headline-wrapper").First())
	marketValue := htmlutil.CleanText(doc.Find(".data-header__market-value-wrapper").First())
	imageUrl := doc.Find(".data-header__profile-image").First().AttrOr("src", "")
	return Profile{
		Name:        name,
		MarketValue: marketValue,
		ImageUrl:    imageUrl,
	}
}

func (c *Client) parseRumorRows(ctx context.Context, doc *goquery.Document) []RumorRow {
	container := doc.Find("div#" + RumorContainerId).First()
	if container.Length() == 0 {
		slog.WarnContext(ctx, "rumor container not found")
		return nil
	}

	rows := container.Find("table.transfergeruechte tbody tr")
	slog.InfoContext(ctx, "found rumor rows", "count", rows.Length())

	var rumors []RumorRow
	rows.Each(func(_ int, row *goquery.Selection) {
		columns := row.Find("td")
		if columns.Length() == 0 {
			return
		}

		rumor := RumorRow{
			Title:      htmlutil.CleanText(columns.Eq(0)),
			Link:       htmlutil.AbsoluteHref(c.BaseUrl, columns.Eq(0).Find("a").First()),
			Percentage: parsePercentage(row),
		}
		if columns.Length() > 2 {
			rumor.Date = htmlutil.CleanText(columns.Eq(2))
		}
		if columns.Length() > 4 {
			rumor.Content = htmlutil.CleanText(columns.Eq(4))
		}

		slog.DebugContext(
			ctx, "rumor row",
			"title", rumor.Title,
			"percentage", rumor.Percentage,
		)
		rumors = append(rumors, rumor)
	})
	return rumors
}

// The probability badge has gone through several markup revisions, these
// are tried in order.
var percentageSelectors = []string{
	".tm-odds-bar__percentage",
	".percentage",
	"span[class*='percentage']",
}

func parsePercentage(row *goquery.Selection) float64 {
	for _, selector := range percentageSelectors {
		badge := row.Find(selector).First()
		if badge.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(badge.Text())
		if !strings.Contains(text, "%") {
			continue
		}
		number := strings.TrimSpace(text[:strings.Index(text, "%")])
		value, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return 0
		}
		return value
	}
	return 0
}

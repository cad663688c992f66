// Package fetch abstracts how a page's final HTML is obtained. The static
// fetcher is a plain HTTP GET; the rendered fetcher drives a headless
// browser for pages that only populate after script execution. The mode is
// resolved once from configuration and injected, never chosen ad hoc at
// call sites.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type Mode string

const (
	ModeStatic   Mode = "static"
	ModeRendered Mode = "rendered"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStatic, "":
		return ModeStatic, nil
	case ModeRendered:
		return ModeRendered, nil
	}
	return "", fmt.Errorf("unknown fetch mode %q, expected %q or %q", s, ModeStatic, ModeRendered)
}

type Fetcher interface {
	// Fetch returns the final HTML of the page at url.
	Fetch(ctx context.Context, url string) (string, error)
}

type StaticFetcher struct {
	http *resty.Client
}

// NewStaticFetcher wraps an existing resty client. The caller keeps
// ownership of the client configuration (headers, transport, timeout).
func NewStaticFetcher(client *resty.Client) StaticFetcher {
	return StaticFetcher{http: client}
}

func (f StaticFetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", err
	}
	if res.StatusCode() >= 400 {
		return "", fmt.Errorf("GET %s: status %d", url, res.StatusCode())
	}
	return res.String(), nil
}

const renderedFetchTimeout = time.Second * 30

type RenderedFetcher struct {
	// WaitSelector is the CSS selector whose readiness marks the page as
	// fully rendered.
	WaitSelector string
}

func NewRenderedFetcher(waitSelector string) RenderedFetcher {
	return RenderedFetcher{WaitSelector: waitSelector}
}

// Package transfermarkt scrapes player search results, profile headers and
// transfer rumor tables from transfermarkt.com.
package transfermarkt

import (
	"net/http/cookiejar"
	"net/url"
	"time"

	"mercato-backend/lib/fetch"
	"mercato-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://www.transfermarkt.com"

// RumorContainerId is the element id of the rumor section on profile
// pages. The rendered fetch path waits for it before reading the DOM.
const RumorContainerId = "transfers"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	fetcher fetch.Fetcher
}

type ClientOptions struct {
	// BaseUrl defaults to the public site.
	BaseUrl string
	// Fetcher obtains profile page HTML. Defaults to a static fetch
	// through the client's own HTTP client.
	Fetcher fetch.Fetcher
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	client.SetHeader("accept-language", "en-US,en;q=0.9")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 10)

	telemetry.InstrumentResty(client, "lib/scrapers/transfermarkt/http")
	instrumentClient(client)

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
		fetcher: opts.Fetcher,
	}
	if c.fetcher == nil {
		c.fetcher = fetch.NewStaticFetcher(client)
	}
	return c, nil
}

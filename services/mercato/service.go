// Package mercato turns free-text player and club input into a transfer
// assessment: it resolves the player on transfermarkt, pulls the rumor
// table off the profile page and keeps the rows that mention the club.
package mercato

import (
	"context"
	"time"

	"mercato-backend/lib/fetch"
	"mercato-backend/lib/scrapers/transfermarkt"
	"mercato-backend/lib/translate"

	"github.com/mazen160/go-random"
)

const (
	// minimum partial-ratio score for a search row to count as the player
	matchThreshold = 80
	// minimum partial-ratio score for a rumor title to count as the club
	clubMatchThreshold = 60

	maxSuggestions = 15
	// minimum input length before suggestions are attempted
	minSuggestInput = 2
)

type Config struct {
	// BaseUrl overrides the upstream site, used by tests.
	BaseUrl string `json:"base_url"`
	// FetchMode is "static" or "rendered", see lib/fetch.
	FetchMode string `json:"fetch_mode"`
}

type Service struct {
	scraper    *transfermarkt.Client
	translator translate.Translator
	mode       fetch.Mode

	// sleep is the courtesy pause between search attempts, replaced in
	// tests
	sleep func(ctx context.Context)
}

func NewService(config Config, translator translate.Translator) (Service, error) {
	mode, err := fetch.ParseMode(config.FetchMode)
	if err != nil {
		return Service{}, err
	}

	var fetcher fetch.Fetcher
	if mode == fetch.ModeRendered {
		fetcher = fetch.NewRenderedFetcher("#" + transfermarkt.RumorContainerId)
	}
	scraper, err := transfermarkt.NewClient(transfermarkt.ClientOptions{
		BaseUrl: config.BaseUrl,
		Fetcher: fetcher,
	})
	if err != nil {
		return Service{}, err
	}

	return Service{
		scraper:    scraper,
		translator: translator,
		mode:       mode,
		sleep:      courtesyPause,
	}, nil
}

// courtesyPause spaces out consecutive search requests. Roughly a second,
// jittered so repeated runs don't hit the upstream site in lockstep.
func courtesyPause(ctx context.Context) {
	ms, err := random.IntRange(800, 1200)
	if err != nil {
		ms = 1000
	}

	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

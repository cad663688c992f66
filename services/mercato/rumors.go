package mercato

import (
	"context"
	"log/slog"
	"strings"

	"mercato-backend/lib/fetch"
	"mercato-backend/lib/fuzz"
	"mercato-backend/lib/textutil"

	"go.opentelemetry.io/otel/codes"
)

const assessmentSource = "Transfermarkt"

// marketValueUnavailable is shown when the profile header carries no
// market value.
const marketValueUnavailable = "غير متوفر"

type PlayerProfile struct {
	Name        string `json:"name"`
	MarketValue string `json:"market_value"`
	ImageUrl    string `json:"image_url,omitempty"`
	Url         string `json:"url"`
}

type RumorRecord struct {
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Content    string  `json:"content"`
	Link       string  `json:"link,omitempty"`
	Percentage float64 `json:"percentage"`
}

// TransferAssessment carries the percentage of the last matched rumor row.
// Callers wanting a different aggregation should compute it over
// Result.Rumors, see Result.MaxProbability.
type TransferAssessment struct {
	Probability float64 `json:"probability"`
	Source      string  `json:"source"`
}

type Result struct {
	Player     *PlayerProfile      `json:"player"`
	Assessment *TransferAssessment `json:"assessment"`
	Rumors     []RumorRecord       `json:"rumors"`
	Err        *Error              `json:"-"`
}

// MaxProbability is the highest percentage across matched rumors, the
// aggregation most callers actually want for a single headline number.
func (r Result) MaxProbability() float64 {
	max := 0.0
	for _, rumor := range r.Rumors {
		if rumor.Percentage > max {
			max = rumor.Percentage
		}
	}
	return max
}

// ClubVariants expands a club name into the normalized spellings rumor
// titles are matched against. Hard-coded list, extended as new aliases
// show up in titles.
func ClubVariants(clubEn string) []string {
	candidates := []string{
		clubEn,
		"FC " + clubEn,
		"F.C. " + clubEn,
		strings.ReplaceAll(clubEn, "Barcelona", "Barça"),
	}

	var variants []string
	seen := map[string]struct{}{}
	for _, candidate := range candidates {
		normalized := textutil.Normalize(candidate)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		variants = append(variants, normalized)
	}
	return variants
}

// MatchesClub reports whether a rumor title mentions any of the club
// variants, by partial-ratio score above the club threshold.
func MatchesClub(title string, variants []string) bool {
	normalizedTitle := textutil.Normalize(title)
	for _, variant := range variants {
		if fuzz.PartialRatio(variant, normalizedTitle) > clubMatchThreshold {
			return true
		}
	}
	return false
}

// GetTransferData resolves the player, extracts their profile and rumor
// table, and keeps the rows matching the club. Failures come back inside
// the result, classified; nothing is raised past this boundary.
func (s Service) GetTransferData(ctx context.Context, playerName, clubName string) Result {
	ctx, span := tracer.Start(ctx, "GetTransferData")
	defer span.End()

	clubEn := s.TranslateClub(ctx, clubName)
	variants := ClubVariants(clubEn)

	profileUrl, err := s.Resolve(ctx, playerName)
	if err != nil {
		span.SetStatus(codes.Error, "resolution failed")
		return Result{Err: AsError(err)}
	}

	profile, rows, err := s.scraper.FetchProfile(ctx, profileUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "profile fetch failed")
		if s.mode == fetch.ModeRendered {
			return Result{Err: newAutomationFailure(err)}
		}
		return Result{Err: newFetchFailure(err)}
	}

	player := &PlayerProfile{
		Name:        profile.Name,
		MarketValue: profile.MarketValue,
		ImageUrl:    profile.ImageUrl,
		Url:         profileUrl,
	}
	if player.Name == "" {
		player.Name = playerName
	}
	if player.MarketValue == "" {
		player.MarketValue = marketValueUnavailable
	}

	var rumors []RumorRecord
	probability := 0.0
	for _, row := range rows {
		if !MatchesClub(row.Title, variants) {
			continue
		}
		rumors = append(rumors, RumorRecord{
			Title:      row.Title,
			Date:       row.Date,
			Content:    row.Content,
			Link:       row.Link,
			Percentage: row.Percentage,
		})
		// inherited behavior: the scalar probability tracks the last
		// matched row
		probability = row.Percentage
		slog.InfoContext(
			ctx, "matched rumor",
			"title", row.Title,
			"percentage", row.Percentage,
		)
	}

	return Result{
		Player: player,
		Assessment: &TransferAssessment{
			Probability: probability,
			Source:      assessmentSource,
		},
		Rumors: rumors,
	}
}

package mercato

import (
	"context"
	"log/slog"

	"mercato-backend/lib/fuzz"
	"mercato-backend/lib/textutil"

	"go.opentelemetry.io/otel/codes"
)

// Resolve finds the canonical profile URL for a player name. The first
// candidate across query variants scoring above the match threshold wins;
// variants are tried in order with a courtesy pause in between. The result
// is ErrKindPlayerNotFound when nothing matches, or ErrKindFetchFailure
// when every variant failed outright.
func (s Service) Resolve(ctx context.Context, player string) (string, error) {
	ctx, span := tracer.Start(ctx, "Resolve")
	defer span.End()

	key := textutil.Normalize(player)
	variants := queryVariants(player)

	var lastErr error
	failures := 0
	for i, variant := range variants {
		results, err := s.scraper.Search(ctx, variant)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "search variant failed", "query", variant, "err", err)
			lastErr = err
			failures++
			continue
		}

		for _, result := range results {
			similarity := fuzz.PartialRatio(textutil.Normalize(result.Name), key)
			if similarity > matchThreshold {
				slog.InfoContext(
					ctx, "resolved player",
					"player", player,
					"candidate", result.Name,
					"score", similarity,
				)
				return result.ProfileUrl, nil
			}
		}

		if i < len(variants)-1 {
			s.sleep(ctx)
		}
	}

	if failures == len(variants) && lastErr != nil {
		span.SetStatus(codes.Error, "all search variants failed")
		return "", newFetchFailure(lastErr)
	}
	span.SetStatus(codes.Error, "no candidate met the match threshold")
	return "", newPlayerNotFound(player)
}

// ResolveBest scans every variant and candidate and returns the
// best-scoring profile above the threshold instead of the first. Slower
// (always exhausts all variants) but immune to a mediocre early hit
// shadowing an exact later one.
func (s Service) ResolveBest(ctx context.Context, player string) (string, error) {
	ctx, span := tracer.Start(ctx, "ResolveBest")
	defer span.End()

	key := textutil.Normalize(player)
	variants := queryVariants(player)

	best := matchThreshold
	bestUrl := ""
	var lastErr error
	failures := 0
	for i, variant := range variants {
		results, err := s.scraper.Search(ctx, variant)
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "search variant failed", "query", variant, "err", err)
			lastErr = err
			failures++
			continue
		}

		for _, result := range results {
			similarity := fuzz.PartialRatio(textutil.Normalize(result.Name), key)
			if similarity > best {
				best = similarity
				bestUrl = result.ProfileUrl
			}
		}

		if i < len(variants)-1 {
			s.sleep(ctx)
		}
	}

	if bestUrl != "" {
		return bestUrl, nil
	}
	if failures == len(variants) && lastErr != nil {
		span.SetStatus(codes.Error, "all search variants failed")
		return "", newFetchFailure(lastErr)
	}
	span.SetStatus(codes.Error, "no candidate met the match threshold")
	return "", newPlayerNotFound(player)
}

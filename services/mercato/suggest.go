package mercato

import (
	"context"
	"log/slog"
	"strings"

	"mercato-backend/lib/fuzz"
	"mercato-backend/lib/textutil"

	"go.opentelemetry.io/otel/codes"
)

// queryVariants builds the ordered search queries tried for a name:
// verbatim, normalized, and the first name alone when the input has more
// than one word. Spaces become "+" which the quick search endpoint treats
// as a separator.
func queryVariants(name string) []string {
	candidates := []string{name, textutil.Normalize(name)}
	if first := textutil.FirstToken(name); first != "" {
		candidates = append(candidates, first)
	}

	var variants []string
	seen := map[string]struct{}{}
	for _, candidate := range candidates {
		query := strings.ReplaceAll(strings.TrimSpace(candidate), " ", "+")
		if query == "" {
			continue
		}
		if _, dup := seen[query]; dup {
			continue
		}
		seen[query] = struct{}{}
		variants = append(variants, query)
	}
	return variants
}

// Suggest returns up to 15 player-name suggestions for free-text input,
// seeded with the input itself. `arabic` marks input that should be
// translated before being used as the comparison key. Search failures
// degrade to fewer suggestions, never to an error.
func (s Service) Suggest(ctx context.Context, input string, arabic bool) []string {
	ctx, span := tracer.Start(ctx, "Suggest")
	defer span.End()

	input = strings.TrimSpace(input)
	if len([]rune(input)) < minSuggestInput {
		return nil
	}

	suggestions := []string{input}
	key := textutil.Normalize(input)

	if arabic {
		translated, err := s.translator.Translate(ctx, input, "ar", "en")
		if err != nil {
			slog.WarnContext(ctx, "input translation failed", "input", input, "err", err)
		} else {
			translated = strings.ToLower(strings.TrimSpace(translated))
			if !containsString(suggestions, translated) {
				suggestions = append(suggestions, translated)
			}
			key = textutil.Normalize(translated)
		}
	}
	seedCount := len(suggestions)

	variants := queryVariants(input)
	for i, variant := range variants {
		results, err := s.scraper.Search(ctx, variant)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "search variant failed")
			slog.WarnContext(ctx, "search variant failed", "query", variant, "err", err)
			continue
		}

		for _, result := range results {
			similarity := fuzz.PartialRatio(key, textutil.Normalize(result.Name))
			if similarity <= matchThreshold {
				continue
			}
			if containsString(suggestions, result.Name) {
				continue
			}
			suggestions = append(suggestions, result.Name)
		}

		if len(suggestions) > seedCount {
			break
		}
		if i < len(variants)-1 {
			s.sleep(ctx)
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	slog.InfoContext(ctx, "built suggestions", "input", input, "count", len(suggestions))
	return suggestions
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

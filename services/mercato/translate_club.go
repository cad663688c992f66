package mercato

import (
	"context"
	"log/slog"
	"strings"

	"mercato-backend/lib/textutil"
)

// Clubs the product's Arabic-speaking users ask about most, mapped ahead
// of time so the translation service is only consulted for the long tail.
var clubTranslations = map[string]string{
	"النصر":           "Al-Nassr",
	"الهلال":          "Al-Hilal",
	"الأهلي":          "Al-Ahli",
	"الاتحاد":         "Al-Ittihad",
	"الشباب":          "Al-Shabab",
	"الاتفاق":         "Al-Ettifaq",
	"القادسية":        "Al-Qadsiah",
	"برشلونة":         "Barcelona",
	"ريال مدريد":      "Real Madrid",
	"مانشستر يونايتد": "Manchester United",
}

// TranslateClub maps a club name to the English form the upstream site
// indexes. Translation failure is non-fatal: the original name is returned
// and matching quality degrades instead of the request aborting.
func (s Service) TranslateClub(ctx context.Context, name string) string {
	if !textutil.IsArabic(name) {
		return strings.TrimSpace(name)
	}

	name = strings.TrimSpace(name)
	if english, ok := clubTranslations[name]; ok {
		return english
	}

	translated, err := s.translator.Translate(ctx, name, "ar", "en")
	if err != nil {
		slog.WarnContext(ctx, "club translation failed", "club", name, "err", err)
		return name
	}
	return strings.TrimSpace(translated)
}

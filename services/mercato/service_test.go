package mercato

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"mercato-backend/lib/telemetry"
	"mercato-backend/lib/translate"

	"github.com/stretchr/testify/require"
)

// staticTranslator serves canned translations and records whether it was
// consulted at all.
type staticTranslator struct {
	entries map[string]string
	err     error
	calls   int
}

func (st *staticTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	st.calls++
	if st.err != nil {
		return "", st.err
	}
	if out, ok := st.entries[text]; ok {
		return out, nil
	}
	return text, nil
}

var _ translate.Translator = (*staticTranslator)(nil)

func fixture(t *testing.T, name string) []byte {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func fixtureServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/schnellsuche/ergebnis/schnellsuche":
			w.Write(fixture(t, "search_results.html"))
		case "/joan-garcia/profil/spieler/636688":
			w.Write(fixture(t, "profile_joan.html"))
		case "/marc-tester/profil/spieler/777":
			w.Write(fixture(t, "profile_multi.html"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newFixtureService(t *testing.T, translator *staticTranslator) Service {
	cleanup := telemetry.SetupForTesting(t, "test:mercato")
	t.Cleanup(cleanup)

	server := fixtureServer(t)
	service, err := NewService(Config{
		BaseUrl:   server.URL,
		FetchMode: "static",
	}, translator)
	require.NoError(t, err)
	service.sleep = func(ctx context.Context) {}
	return service
}

func TestSuggest(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	suggestions := service.Suggest(context.Background(), "Luis Diaz", false)
	require.Equal(t, []string{"Luis Diaz", "Luis Díaz"}, suggestions)
}

func TestSuggestSeedOnlyWhenNothingSimilar(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	suggestions := service.Suggest(context.Background(), "Zlatan Ibrahimovic", false)
	require.Equal(t, []string{"Zlatan Ibrahimovic"}, suggestions)
}

func TestSuggestCapsAndDeduplicates(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:mercato")
	t.Cleanup(cleanup)

	// 19 search rows score above the threshold, two of them repeat the
	// input and one repeats another row
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(fixture(t, "search_results_many.html"))
	}))
	t.Cleanup(server.Close)

	service, err := NewService(Config{
		BaseUrl:   server.URL,
		FetchMode: "static",
	}, &staticTranslator{})
	require.NoError(t, err)
	service.sleep = func(ctx context.Context) {}

	suggestions := service.Suggest(context.Background(), "Lionel Messi", false)
	require.Len(t, suggestions, 15)

	seen := map[string]struct{}{}
	for _, suggestion := range suggestions {
		_, dup := seen[suggestion]
		require.False(t, dup, "duplicate suggestion %q", suggestion)
		seen[suggestion] = struct{}{}
	}
}

func TestSuggestShortInput(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	require.Nil(t, service.Suggest(context.Background(), "L", false))
	require.Nil(t, service.Suggest(context.Background(), "  ك ", false))
}

func TestSuggestArabic(t *testing.T) {
	translator := &staticTranslator{entries: map[string]string{
		"جوان غارسيا": "Joan Garcia",
	}}
	service := newFixtureService(t, translator)

	suggestions := service.Suggest(context.Background(), "جوان غارسيا", true)
	require.Equal(t, 1, translator.calls)
	require.Contains(t, suggestions, "جوان غارسيا")
	require.Contains(t, suggestions, "joan garcia")
	require.Contains(t, suggestions, "Joan García")
}

func TestResolve(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	url, err := service.Resolve(context.Background(), "Joan Garcia")
	require.NoError(t, err)
	require.Contains(t, url, "/joan-garcia/profil/spieler/636688")
}

func TestResolveNotFound(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	_, err := service.Resolve(context.Background(), "Zlatan Ibrahimovic")
	require.Error(t, err)
	require.Equal(t, ErrKindPlayerNotFound, AsError(err).Kind)
}

func TestClubVariants(t *testing.T) {
	variants := ClubVariants("Barcelona")
	require.Contains(t, variants, "barcelona")
	require.Contains(t, variants, "fc barcelona")
	require.Contains(t, variants, "barca")
}

func TestMatchesClub(t *testing.T) {
	variants := ClubVariants("Barcelona")

	require.True(t, MatchesClub("Rumors linking him to FC Barcelona", variants))
	require.True(t, MatchesClub("Barça still negotiating personal terms", variants))
	require.False(t, MatchesClub("Linked to Real Madrid", variants))
}

func TestTranslateClub(t *testing.T) {
	translator := &staticTranslator{entries: map[string]string{
		"نادي صغير": "Small Club",
	}}
	service := newFixtureService(t, translator)
	ctx := context.Background()

	require.Equal(t, "Chelsea", service.TranslateClub(ctx, "  Chelsea "))
	require.Equal(t, "Barcelona", service.TranslateClub(ctx, "برشلونة"))
	require.Equal(t, 0, translator.calls)

	require.Equal(t, "Small Club", service.TranslateClub(ctx, "نادي صغير"))
	require.Equal(t, 1, translator.calls)
}

func TestTranslateClubFailureFallsBack(t *testing.T) {
	translator := &staticTranslator{err: errors.New("quota exceeded")}
	service := newFixtureService(t, translator)

	require.Equal(t, "نادي صغير", service.TranslateClub(context.Background(), "نادي صغير"))
}

func TestGetTransferData(t *testing.T) {
	translator := &staticTranslator{}
	service := newFixtureService(t, translator)

	result := service.GetTransferData(context.Background(), "Joan Garcia", "برشلونة")
	require.Nil(t, result.Err)
	require.Equal(t, 0, translator.calls)

	require.Equal(t, "Joan García", result.Player.Name)
	require.Equal(t, "€10.00m", result.Player.MarketValue)
	require.Contains(t, result.Player.Url, "/joan-garcia/profil/spieler/636688")

	require.Len(t, result.Rumors, 1)
	require.Equal(t, "Barcelona in talks over summer move", result.Rumors[0].Title)
	require.Equal(t, 75.0, result.Rumors[0].Percentage)
	require.Equal(t, 75.0, result.Assessment.Probability)
	require.Equal(t, "Transfermarkt", result.Assessment.Source)
}

func TestGetTransferDataLastMatchWinsScalar(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	result := service.GetTransferData(context.Background(), "Marc Tester", "Barcelona")
	require.Nil(t, result.Err)

	// the Real Madrid row is filtered out, the two Barcelona rows stay
	require.Len(t, result.Rumors, 2)
	require.Equal(t, 75.0, result.Rumors[0].Percentage)
	require.Equal(t, 30.0, result.Rumors[1].Percentage)

	// the scalar tracks the last matched row; MaxProbability aggregates
	require.Equal(t, 30.0, result.Assessment.Probability)
	require.Equal(t, 75.0, result.MaxProbability())
}

func TestGetTransferDataPlayerNotFound(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	result := service.GetTransferData(context.Background(), "Zlatan Ibrahimovic", "Barcelona")
	require.NotNil(t, result.Err)
	require.Equal(t, ErrKindPlayerNotFound, result.Err.Kind)
	require.NotEmpty(t, result.Err.UserMessage)
	require.Nil(t, result.Player)
}

func TestGetTransferDataFetchFailure(t *testing.T) {
	service := newFixtureService(t, &staticTranslator{})

	// resolves fine from search, but the profile page 404s
	result := service.GetTransferData(context.Background(), "Ghost Player", "Barcelona")
	require.NotNil(t, result.Err)
	require.Equal(t, ErrKindFetchFailure, result.Err.Kind)
}

func TestQueryVariants(t *testing.T) {
	require.Equal(
		t,
		[]string{"Luis+Díaz", "luis+diaz", "Luis"},
		queryVariants("Luis Díaz"),
	)
	require.Equal(t, []string{"messi"}, queryVariants("messi"))
}

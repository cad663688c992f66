package transfermarkt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"mercato-backend/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

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
			w.Write(fixture(t, "profile.html"))
		case "/retired-player/profil/spieler/1":
			w.Write(fixture(t, "profile_no_rumors.html"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newFixtureClient(t *testing.T) *Client {
	cleanup := telemetry.SetupForTesting(t, "test:transfermarkt")
	t.Cleanup(cleanup)

	server := fixtureServer(t)
	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)
	return client
}

func TestSearch(t *testing.T) {
	client := newFixtureClient(t)

	results, err := client.Search(context.Background(), "Luis+Diaz")
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, "Luis Díaz", results[0].Name)
	require.Equal(t, client.BaseUrl.String()+"/luis-diaz/profil/spieler/480692", results[0].ProfileUrl)
	require.Equal(t, "Luis Javier Díaz", results[1].Name)
	require.Equal(t, "Wanderson Maranhão", results[2].Name)
}

func TestSearchQueryEscaping(t *testing.T) {
	var rawQuery, decoded string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		decoded = r.URL.Query().Get("query")
		w.Write(fixture(t, "search_results.html"))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "جوان+غارسيا")
	require.NoError(t, err)

	// non-ASCII words arrive percent-encoded, "+" separators survive and
	// decode back into spaces
	for _, c := range rawQuery {
		require.Less(t, c, rune(128), "request line must be ASCII: %q", rawQuery)
	}
	require.Contains(t, rawQuery, "+")
	require.Equal(t, "جوان غارسيا", decoded)
}

func TestSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "anything")
	require.Error(t, err)
}

func TestFetchProfile(t *testing.T) {
	client := newFixtureClient(t)

	profile, rumors, err := client.FetchProfile(
		context.Background(),
		client.BaseUrl.String()+"/joan-garcia/profil/spieler/636688",
	)
	require.NoError(t, err)

	require.Equal(t, "#13 Joan García", profile.Name)
	require.Equal(t, "€10.00m", profile.MarketValue)
	require.Equal(t, "https://img.a.transfermarkt.technology/portrait/header/636688-1748102259.jpg", profile.ImageUrl)

	// the second row's badge text carries no "%", it parses to 0 but the
	// row is still returned
	expected := []RumorRow{
		{
			Title:      "Barcelona in talks",
			Date:       "Jun 2, 2025",
			Content:    "Release clause expected to be met",
			Link:       client.BaseUrl.String() + "/geruecht/barcelona-in-talks/thread/12345",
			Percentage: 75,
		},
		{
			Title:      "FC Barcelona keeper hunt continues",
			Date:       "May 28, 2025",
			Content:    "Club searching for a long term number one",
			Link:       client.BaseUrl.String() + "/geruecht/fc-barcelona-keeper-hunt/thread/12399",
			Percentage: 0,
		},
		{
			Title:      "Linked to Real Madrid",
			Date:       "May 12, 2025",
			Content:    "Back up option behind Courtois",
			Link:       client.BaseUrl.String() + "/geruecht/linked-to-real-madrid/thread/12416",
			Percentage: 40,
		},
	}
	diff := cmp.Diff(expected, rumors)
	if diff != "" {
		t.Fatalf("unexpected rumor rows:\n%s", diff)
	}
}

func TestFetchProfileNoRumorContainer(t *testing.T) {
	client := newFixtureClient(t)

	profile, rumors, err := client.FetchProfile(
		context.Background(),
		client.BaseUrl.String()+"/retired-player/profil/spieler/1",
	)
	require.NoError(t, err)
	require.Equal(t, "Retired Player", profile.Name)
	require.Equal(t, "", profile.MarketValue)
	require.Equal(t, "", profile.ImageUrl)
	require.Empty(t, rumors)
}

func TestFetchProfileFetchError(t *testing.T) {
	client := newFixtureClient(t)

	_, _, err := client.FetchProfile(
		context.Background(),
		client.BaseUrl.String()+"/missing/profil/spieler/2",
	)
	require.Error(t, err)
}

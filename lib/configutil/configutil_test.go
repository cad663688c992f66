package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl   string `json:"base_url"`
	FetchMode string `json:"fetch_mode"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "mercato.json5")

	err := os.WriteFile(name, []byte(`{
		// comments are allowed
		base_url: "https://www.transfermarkt.com",
		fetch_mode: "static",
	}`), 0600)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://www.transfermarkt.com", config.BaseUrl)
	require.Equal(t, "static", config.FetchMode)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "mercato.json5")

	err := os.WriteFile(name, []byte(`{base_url: "https://www.transfermarkt.com", fetch_mode: "static"}`), 0600)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "mercato.local.json5"), []byte(`{fetch_mode: "rendered"}`), 0600)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "https://www.transfermarkt.com", config.BaseUrl)
	require.Equal(t, "rendered", config.FetchMode)
}

func TestReadConfigNotFound(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "missing.json5"))
	require.True(t, os.IsNotExist(err))
}

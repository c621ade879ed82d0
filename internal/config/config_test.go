package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeFastest, cfg.Search.Mode)
	assert.Equal(t, DefaultRaceProviders, cfg.Race.Providers)
	assert.Equal(t, DefaultProviderTimeout, cfg.Providers.Timeout)
	assert.True(t, cfg.Providers.DuckDuckGo)
	assert.Equal(t, DefaultMaxAttempts, cfg.Providers.MaxAttempts)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxResults, cfg.Search.MaxResults)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "askroute.yaml")
	content := `
log_level: DEBUG
search:
  mode: Accurate
  max_results: 7
  cache_ttl: 30s
providers:
  brave_api_key: from-file
  max_attempts: 3
race:
  providers: [brave, groq]
location:
  city: Lisbon
  country: Portugal
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("BRAVE_API_KEY", "from-env")
	t.Setenv("SERPAPI_KEY", "serp")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ModeAccurate, cfg.Search.Mode)
	assert.Equal(t, 7, cfg.Search.MaxResults)
	assert.Equal(t, 30*time.Second, cfg.Search.CacheTTL)
	assert.Equal(t, "from-env", cfg.Providers.BraveAPIKey)
	assert.Equal(t, "serp", cfg.Providers.SerpAPIKey)
	assert.Equal(t, 3, cfg.Providers.MaxAttempts)
	assert.Equal(t, []string{"brave", "groq"}, cfg.Race.Providers)
	assert.Equal(t, "Lisbon, Portugal", cfg.Location.String())
}

func TestLoad_InvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  mode: turbo\n"), 0o644))
	t.Setenv("ASKROUTE_SEARCH_MODE", "")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{"nil", nil, ""},
		{"label wins", &Location{Label: "Home", City: "Paris"}, "Home"},
		{"postal next", &Location{Postal: "10115", City: "Berlin"}, "10115"},
		{"city region country", &Location{City: "Austin", Region: "TX", Country: "US"}, "Austin, TX, US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.String())
		})
	}
}

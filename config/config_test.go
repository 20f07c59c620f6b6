package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/s0up4200/ytsearch/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *Config {
	return &Config{
		YouTube: YouTubeConfig{APIKey: "valid-api-key"},
		Search:  SearchConfig{MaxResults: 5, Concurrency: 4},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("YTSEARCH_YOUTUBE_API_KEY", "")
	t.Setenv("YT_API_KEY", "")

	path := writeConfig(t, `
youtube:
  api_key: file-key
  timeout: 10s
  check_status: false
search:
  max_results: 25
  order: viewCount
  safe_search: strict
  region_code: DE
  concurrency: 2
filter:
  default_expression: 'Kind == "video"'
  presets:
    recent: 'HasPublished and daysSince(PublishedAt) < 7'
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.YouTube.APIKey)
	assert.Equal(t, 10*time.Second, cfg.YouTube.Timeout)
	assert.False(t, cfg.YouTube.CheckStatus)
	assert.Equal(t, youtube.SearchURL, cfg.YouTube.BaseURL)
	assert.Equal(t, youtube.DefaultUserAgent, cfg.YouTube.UserAgent)

	assert.Equal(t, 25, cfg.Search.MaxResults)
	assert.Equal(t, "viewCount", cfg.Search.Order)
	assert.Equal(t, "strict", cfg.Search.SafeSearch)
	assert.Equal(t, "DE", cfg.Search.RegionCode)
	assert.Equal(t, 2, cfg.Search.Concurrency)

	assert.Equal(t, `Kind == "video"`, cfg.Filter.DefaultExpression)
	assert.Equal(t, map[string]string{"recent": "HasPublished and daysSince(PublishedAt) < 7"}, cfg.Filter.Presets)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
youtube:
  api_key: file-key
`)

	t.Setenv("YTSEARCH_YOUTUBE_API_KEY", "env-key")
	t.Setenv("YTSEARCH_SEARCH_MAX_RESULTS", "10")
	t.Setenv("YTSEARCH_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.YouTube.APIKey)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_PlainAPIKeyVariable(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	t.Setenv("YTSEARCH_YOUTUBE_API_KEY", "")
	t.Setenv("YT_API_KEY", "plain-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "plain-key", cfg.YouTube.APIKey)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	assert.Equal(t, youtube.DefaultBatchConcurrency, cfg.Search.Concurrency)
	assert.Equal(t, youtube.DefaultTimeout, cfg.YouTube.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("YTSEARCH_YOUTUBE_API_KEY", "")
	t.Setenv("YT_API_KEY", "")
	path := writeConfig(t, "search:\n  max_results: 5\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:    "placeholder key",
			modify:  func(c *Config) { c.YouTube.APIKey = "your-api-key-here" },
			wantErr: "api_key",
		},
		{
			name:    "max results too large",
			modify:  func(c *Config) { c.Search.MaxResults = 51 },
			wantErr: "search.max_results",
		},
		{
			name:    "zero concurrency",
			modify:  func(c *Config) { c.Search.Concurrency = 0 },
			wantErr: "search.concurrency",
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.YouTube.Timeout = -time.Second },
			wantErr: "youtube.timeout",
		},
		{
			name:    "unknown order",
			modify:  func(c *Config) { c.Search.Order = "popularity" },
			wantErr: "invalid search.order",
		},
		{
			name:   "order is case insensitive",
			modify: func(c *Config) { c.Search.Order = "VIEWCOUNT" },
		},
		{
			name:    "unknown safe search",
			modify:  func(c *Config) { c.Search.SafeSearch = "off" },
			wantErr: "invalid search.safe_search",
		},
		{
			name:    "invalid level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchConfig_Apply(t *testing.T) {
	search := SearchConfig{
		MaxResults:        10,
		Order:             "date",
		SafeSearch:        "none",
		RegionCode:        "US",
		RelevanceLanguage: "en",
	}

	req, err := search.Apply(youtube.NewSearchList("key").Q("golang"))
	require.NoError(t, err)

	raw, err := req.Encode()
	require.NoError(t, err)
	assert.Equal(t, "key=key&maxResults=10&order=date&part=snippet&q=golang&regionCode=US&relevanceLanguage=en&safeSearch=none", raw)

	_, err = SearchConfig{Order: "bogus"}.Apply(youtube.NewSearchList("key"))
	assert.ErrorIs(t, err, youtube.ErrInvalidEnum)
}

func TestYouTubeConfig_ClientOptions(t *testing.T) {
	assert.Len(t, YouTubeConfig{}.ClientOptions(), 3)
	assert.Len(t, YouTubeConfig{Timeout: time.Second}.ClientOptions(), 4)
}

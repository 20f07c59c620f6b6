package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/s0up4200/ytsearch/youtube"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no API key is configured
var ErrMissingAPIKey = errors.New("youtube.api_key must be set to a valid API key")

// MaxResultsLimit is the largest page size the search endpoint accepts
const MaxResultsLimit = 50

// Load loads the configuration from file and environment.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("YTSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("youtube.api_key", "YTSEARCH_YOUTUBE_API_KEY", "YT_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".ytsearch"))
		}
		v.AddConfigPath("/etc/ytsearch/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// YouTube defaults
	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.base_url", youtube.SearchURL)
	v.SetDefault("youtube.timeout", youtube.DefaultTimeout)
	v.SetDefault("youtube.user_agent", youtube.DefaultUserAgent)
	v.SetDefault("youtube.check_status", true)

	// Search defaults
	v.SetDefault("search.max_results", 5)
	v.SetDefault("search.order", "")
	v.SetDefault("search.safe_search", "")
	v.SetDefault("search.region_code", "")
	v.SetDefault("search.relevance_language", "")
	v.SetDefault("search.concurrency", youtube.DefaultBatchConcurrency)

	// Filter defaults
	v.SetDefault("filter.default_expression", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.YouTube.APIKey == "" || cfg.YouTube.APIKey == "your-api-key-here" {
		return ErrMissingAPIKey
	}

	if cfg.YouTube.Timeout < 0 {
		return fmt.Errorf("youtube.timeout must not be negative: %s", cfg.YouTube.Timeout)
	}

	if cfg.Search.MaxResults < 0 || cfg.Search.MaxResults > MaxResultsLimit {
		return fmt.Errorf("search.max_results must be between 0 and %d: %d", MaxResultsLimit, cfg.Search.MaxResults)
	}

	if cfg.Search.Concurrency < 1 {
		return fmt.Errorf("search.concurrency must be at least 1: %d", cfg.Search.Concurrency)
	}

	if cfg.Search.Order != "" {
		if _, err := youtube.ParseSearchOrder(cfg.Search.Order); err != nil {
			return fmt.Errorf("invalid search.order: %w", err)
		}
	}

	if cfg.Search.SafeSearch != "" {
		if _, err := youtube.ParseSafeSearch(cfg.Search.SafeSearch); err != nil {
			return fmt.Errorf("invalid search.safe_search: %w", err)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ClientOptions returns the youtube client options for this configuration
func (c YouTubeConfig) ClientOptions() []youtube.Option {
	opts := []youtube.Option{
		youtube.WithBaseURL(c.BaseURL),
		youtube.WithUserAgent(c.UserAgent),
		youtube.WithStatusCheck(c.CheckStatus),
	}
	if c.Timeout > 0 {
		opts = append(opts, youtube.WithTimeout(c.Timeout))
	}
	return opts
}

// Apply sets the configured defaults on a search request
func (s SearchConfig) Apply(req youtube.SearchList) (youtube.SearchList, error) {
	req = req.MaxResults(uint8(s.MaxResults))

	if s.Order != "" {
		order, err := youtube.ParseSearchOrder(s.Order)
		if err != nil {
			return req, err
		}
		req = req.Order(order)
	}

	if s.SafeSearch != "" {
		safe, err := youtube.ParseSafeSearch(s.SafeSearch)
		if err != nil {
			return req, err
		}
		req = req.SafeSearch(safe)
	}

	if s.RegionCode != "" {
		req = req.RegionCode(s.RegionCode)
	}
	if s.RelevanceLanguage != "" {
		req = req.RelevanceLanguage(s.RelevanceLanguage)
	}

	return req, nil
}

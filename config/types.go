package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	YouTube YouTubeConfig `mapstructure:"youtube"`
	Search  SearchConfig  `mapstructure:"search"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// YouTubeConfig holds YouTube Data API connection details
type YouTubeConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	CheckStatus bool          `mapstructure:"check_status"`
}

// SearchConfig contains defaults applied to every search request
type SearchConfig struct {
	MaxResults        int    `mapstructure:"max_results"`
	Order             string `mapstructure:"order"`
	SafeSearch        string `mapstructure:"safe_search"`
	RegionCode        string `mapstructure:"region_code"`
	RelevanceLanguage string `mapstructure:"relevance_language"`
	Concurrency       int    `mapstructure:"concurrency"`
}

// FilterConfig contains the default filter and named filter presets
type FilterConfig struct {
	DefaultExpression string            `mapstructure:"default_expression"`
	Presets           map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

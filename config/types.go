package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Retry   RetryConfig   `mapstructure:"retry"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds catalogue API connection details
type APIConfig struct {
	URL                     string        `mapstructure:"url"`
	Token                   string        `mapstructure:"token"`
	Timeout                 time.Duration `mapstructure:"timeout"`
	RaiseOnUnexpectedStatus bool          `mapstructure:"raise_on_unexpected_status"`
}

// RetryConfig controls the retry budget for transient responses
type RetryConfig struct {
	MaxAttempts uint          `mapstructure:"max_attempts"`
	Delay       time.Duration `mapstructure:"delay"`
	MaxDelay    time.Duration `mapstructure:"max_delay"`
	Jitter      time.Duration `mapstructure:"jitter"`
	Statuses    []int         `mapstructure:"statuses"`
}

// SearchConfig contains default search settings
type SearchConfig struct {
	Limit int `mapstructure:"limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

package config

import "time"

// Config represents the complete configuration structure of the disgo CLI
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// ClientConfig holds Disgo API connection details
type ClientConfig struct {
	Environment string        `mapstructure:"environment"`
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Retries     int           `mapstructure:"retries"`
	RetryWait   time.Duration `mapstructure:"retry_wait"`
}

// FilterConfig contains transaction filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	Presets           map[string]PresetFilter `mapstructure:"presets"`
}

// PresetFilter is a named filter expression
type PresetFilter struct {
	Description string `mapstructure:"description"`
	Expression  string `mapstructure:"expression"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig controls the self-update command
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}

// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Currency struct {
		Default string `mapstructure:"default" yaml:"default"`
	} `mapstructure:"currency" yaml:"currency"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Categorization struct {
		RulesFile           string  `mapstructure:"rules_file" yaml:"rules_file"`
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Export struct {
		Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	} `mapstructure:"export" yaml:"export"`
}

// Load initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then FINTRACK_* environment
// variables. GEMINI_API_KEY is bound unprefixed.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fintrack")
	v.AddConfigPath(".fintrack")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file present but unreadable: continue with defaults and env
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.path", "fintrack.db")

	v.SetDefault("currency.default", "USD")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 10)

	v.SetDefault("categorization.rules_file", "")
	v.SetDefault("categorization.confidence_threshold", 0.5)

	v.SetDefault("export.delimiter", ",")
	v.SetDefault("export.date_format", "2006-01-02")
}

// validateConfig checks cross-field constraints that Viper cannot express
func validateConfig(c *Config) error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level: %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %q", c.Log.Format)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if len(c.Currency.Default) != 3 {
		return fmt.Errorf("default currency must be a 3-letter code, got %q", c.Currency.Default)
	}
	if c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai timeout must be positive, got %d", c.AI.TimeoutSeconds)
	}
	if c.Categorization.ConfidenceThreshold < 0 || c.Categorization.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold must be in [0, 1], got %f", c.Categorization.ConfidenceThreshold)
	}
	if len(c.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got %q", c.Export.Delimiter)
	}
	return nil
}

// GetAIEnabled reports whether the Gemini-backed advisory services are on
func (c *Config) GetAIEnabled() bool { return c.AI.Enabled && c.AI.APIKey != "" }

// GetAIAPIKey returns the configured Gemini API key
func (c *Config) GetAIAPIKey() string { return c.AI.APIKey }

// GetAIModel returns the configured Gemini model name
func (c *Config) GetAIModel() string { return c.AI.Model }

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Extraction ExtractionConfig
	Normalizer NormalizerConfig
	Matching   MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractionConfig holds extraction service configuration
type ExtractionConfig struct {
	APIKey            string `mapstructure:"api_key"`
	BaseURL           string `mapstructure:"base_url"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
}

// NormalizerConfig carries the qualifier vocabulary stripped from product
// names when building grouping keys. It is configuration, not code, so the
// vocabulary can be swapped per target market. Empty lists fall back to
// the built-in Brazilian-Portuguese defaults.
type NormalizerConfig struct {
	StripStems  []string `mapstructure:"strip_stems"`
	StripTokens []string `mapstructure:"strip_tokens"`
}

// MatchingConfig holds debug switches for the comparison engine
type MatchingConfig struct {
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/autoquote/")

	// Environment variable settings
	v.SetEnvPrefix("AUTOQUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Extraction service defaults. The api_key default registers the key so
	// AutomaticEnv can see AUTOQUOTE_EXTRACTION_API_KEY during Unmarshal.
	v.SetDefault("extraction.api_key", "")
	v.SetDefault("extraction.base_url", "http://localhost:9090")
	v.SetDefault("extraction.requests_per_minute", 30)

	// Normalizer defaults live in code; empty lists mean "use built-ins"
	v.SetDefault("normalizer.strip_stems", []string{})
	v.SetDefault("normalizer.strip_tokens", []string{})

	// Matching defaults
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Extraction.APIKey == "" {
		return fmt.Errorf("extraction API key is required (set AUTOQUOTE_EXTRACTION_API_KEY)")
	}

	if config.Extraction.BaseURL == "" {
		return fmt.Errorf("extraction base URL must not be empty")
	}

	if config.Extraction.RequestsPerMinute <= 0 {
		return fmt.Errorf("extraction requests per minute must be positive, got: %d",
			config.Extraction.RequestsPerMinute)
	}

	return nil
}

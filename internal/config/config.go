package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process-wide settings. Everything is established once at
// startup and passed into component constructors; handlers never read the
// environment themselves.
type Config struct {
	Port       string `mapstructure:"PORT"`
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`

	// OpenRouter upstream. An empty API key disables the upstream path and
	// every generation is served from the template library.
	OpenRouterAPIKey string `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterBase   string `mapstructure:"OPENROUTER_BASE"`
	OpenRouterModel  string `mapstructure:"OPENROUTER_MODEL"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTExpiry time.Duration `mapstructure:"JWT_EXPIRY"`

	DataDir     string `mapstructure:"DATA_DIR"`
	Environment string `mapstructure:"ENVIRONMENT"`
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	viper.SetDefault("PORT", "5001")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	viper.SetDefault("OPENROUTER_API_KEY", "")
	viper.SetDefault("OPENROUTER_BASE", "https://openrouter.ai/api/v1")
	viper.SetDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("JWT_EXPIRY", "168h")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("ENVIRONMENT", "development")

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be a positive duration")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}

// UpstreamEnabled reports whether an OpenRouter credential is configured.
func (c *Config) UpstreamEnabled() bool {
	return c.OpenRouterAPIKey != ""
}

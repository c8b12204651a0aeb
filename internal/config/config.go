package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// GoogleAPIKey may be empty at load time; operations report a missing
	// credential per call instead of failing startup.
	GoogleAPIKey       string `envconfig:"GOOGLE_TRANSLATE_API_KEY" default:""`
	GoogleBaseURL      string `envconfig:"GOOGLE_TRANSLATE_BASE_URL" default:"https://translation.googleapis.com"`
	HTTPTimeoutSeconds int    `envconfig:"TRANSLATION_HTTP_TIMEOUT_SECONDS" default:"30"`

	Provider string `envconfig:"TRANSLATION_PROVIDER" default:"google"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	baseURL := strings.TrimSpace(c.GoogleBaseURL)
	if baseURL == "" {
		return fmt.Errorf("GOOGLE_TRANSLATE_BASE_URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || strings.TrimSpace(parsed.Host) == "" {
		return fmt.Errorf("GOOGLE_TRANSLATE_BASE_URL must be an absolute URL")
	}
	if c.HTTPTimeoutSeconds < 1 {
		return fmt.Errorf("TRANSLATION_HTTP_TIMEOUT_SECONDS must be >= 1")
	}
	if strings.TrimSpace(c.Provider) == "" {
		return fmt.Errorf("TRANSLATION_PROVIDER is required")
	}
	return nil
}

func (c *Config) HTTPTimeout() time.Duration {
	if c == nil || c.HTTPTimeoutSeconds < 1 {
		return 0
	}
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

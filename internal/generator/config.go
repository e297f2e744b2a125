// Package generator produces landing page copy from a product brief by
// calling an external text generation API.
package generator

import (
	"time"

	"github.com/mlevkin/launchcopy/internal/config"
)

// Config holds generation service configuration.
type Config struct {
	// APIKey authenticates requests to the generation API.
	APIKey string

	// BaseURL is the API endpoint root, without a trailing slash.
	BaseURL string

	// Model is the generation model identifier.
	Model string

	// Timeout bounds a single API call, including retries.
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after a transport
	// error or a 5xx response.
	MaxRetries int

	// Temperature controls output variability.
	Temperature float64
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://generativelanguage.googleapis.com/v1beta",
		Model:       "gemini-3-flash-preview",
		Timeout:     90 * time.Second,
		MaxRetries:  2,
		Temperature: 0.7,
	}
}

// ConfigFromApp builds a [Config] from application configuration, filling
// unset fields from [DefaultConfig].
func ConfigFromApp(appCfg config.Generator) *Config {
	cfg := DefaultConfig()

	cfg.APIKey = appCfg.APIKey
	if appCfg.BaseURL != "" {
		cfg.BaseURL = appCfg.BaseURL
	}
	if appCfg.Model != "" {
		cfg.Model = appCfg.Model
	}
	if appCfg.Timeout > 0 {
		cfg.Timeout = appCfg.Timeout
	}

	return cfg
}

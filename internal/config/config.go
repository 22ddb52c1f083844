package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fundfetcher/internal/fetcher"
)

// Config holds all configuration for the fund fetcher application.
type Config struct {
	// Base URLs for the provider endpoints (configurable for testing)
	AnbimaBaseURL string `mapstructure:"anbima_base_url"`
	VortxBaseURL  string `mapstructure:"vortx_base_url"`
	CVMBaseURL    string `mapstructure:"cvm_base_url"`

	// Transport headers sent on every fetch
	UserAgent string `mapstructure:"user_agent"`
	Accept    string `mapstructure:"accept"`

	// HTTPRetryCount is how many times a failed request is retried
	HTTPRetryCount int `mapstructure:"http_retry_count"`

	// Per-provider fetch budgets. CVM's legacy system is slower and gets
	// extra time.
	AnbimaTimeout time.Duration `mapstructure:"anbima_timeout"`
	VortxTimeout  time.Duration `mapstructure:"vortx_timeout"`
	CVMTimeout    time.Duration `mapstructure:"cvm_timeout"`

	// BatchTimeout bounds one whole search across all providers
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values. All fetches
// are unauthenticated page loads, so nothing is required: every value has a
// working default.
//
// Recognized environment variables:
//   - ANBIMA_BASE_URL, VORTX_BASE_URL, CVM_BASE_URL (optional, default to production)
//   - FUND_USER_AGENT, FUND_ACCEPT (optional header overrides)
//   - HTTP_RETRY_COUNT (optional)
//   - ANBIMA_TIMEOUT, VORTX_TIMEOUT, CVM_TIMEOUT, BATCH_TIMEOUT (optional, e.g. "10s")
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	// Set defaults for base URLs
	v.SetDefault("anbima_base_url", "https://data.anbima.com.br")
	v.SetDefault("vortx_base_url", "https://www.vortx.com.br")
	v.SetDefault("cvm_base_url", "https://cvmweb.cvm.gov.br")

	// Browser-like defaults: the portals serve framework-rendered pages and
	// answer differently to bare library user agents.
	v.SetDefault("user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")

	v.SetDefault("http_retry_count", 2)

	v.SetDefault("anbima_timeout", "10s")
	v.SetDefault("vortx_timeout", "10s")
	v.SetDefault("cvm_timeout", "15s")
	v.SetDefault("batch_timeout", "30s")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.fundfetcher")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("anbima_base_url", "ANBIMA_BASE_URL")
	v.BindEnv("vortx_base_url", "VORTX_BASE_URL")
	v.BindEnv("cvm_base_url", "CVM_BASE_URL")
	v.BindEnv("user_agent", "FUND_USER_AGENT")
	v.BindEnv("accept", "FUND_ACCEPT")
	v.BindEnv("http_retry_count", "HTTP_RETRY_COUNT")
	v.BindEnv("anbima_timeout", "ANBIMA_TIMEOUT")
	v.BindEnv("vortx_timeout", "VORTX_TIMEOUT")
	v.BindEnv("cvm_timeout", "CVM_TIMEOUT")
	v.BindEnv("batch_timeout", "BATCH_TIMEOUT")

	// Unmarshal config into struct
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate: every fetch budget must be positive or the coordinator
	// would cancel fetches before they start.
	var invalid []string
	if config.AnbimaTimeout <= 0 {
		invalid = append(invalid, "ANBIMA_TIMEOUT")
	}
	if config.VortxTimeout <= 0 {
		invalid = append(invalid, "VORTX_TIMEOUT")
	}
	if config.CVMTimeout <= 0 {
		invalid = append(invalid, "CVM_TIMEOUT")
	}
	if config.BatchTimeout <= 0 {
		invalid = append(invalid, "BATCH_TIMEOUT")
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("non-positive timeout configuration: %s", strings.Join(invalid, ", "))
	}

	return config, nil
}

// ClientConfig returns the immutable transport configuration derived from
// this Config, injected into the shared HTTP client at construction.
func (c *Config) ClientConfig() fetcher.ClientConfig {
	return fetcher.ClientConfig{
		UserAgent:  c.UserAgent,
		Accept:     c.Accept,
		RetryCount: c.HTTPRetryCount,
	}
}

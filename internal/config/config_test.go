package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"AnbimaBaseURL", cfg.AnbimaBaseURL, "https://data.anbima.com.br"},
		{"VortxBaseURL", cfg.VortxBaseURL, "https://www.vortx.com.br"},
		{"CVMBaseURL", cfg.CVMBaseURL, "https://cvmweb.cvm.gov.br"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	if !strings.Contains(cfg.UserAgent, "Mozilla/5.0") {
		t.Errorf("UserAgent = %q, want a browser-like default", cfg.UserAgent)
	}
	if cfg.Accept == "" {
		t.Error("Accept header default is empty")
	}

	if cfg.AnbimaTimeout != 10*time.Second {
		t.Errorf("AnbimaTimeout = %v, want 10s", cfg.AnbimaTimeout)
	}
	if cfg.VortxTimeout != 10*time.Second {
		t.Errorf("VortxTimeout = %v, want 10s", cfg.VortxTimeout)
	}
	if cfg.CVMTimeout != 15*time.Second {
		t.Errorf("CVMTimeout = %v, want 15s", cfg.CVMTimeout)
	}
	if cfg.BatchTimeout != 30*time.Second {
		t.Errorf("BatchTimeout = %v, want 30s", cfg.BatchTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	envVars := map[string]string{
		"ANBIMA_BASE_URL":  "http://127.0.0.1:9001",
		"VORTX_BASE_URL":   "http://127.0.0.1:9002",
		"CVM_BASE_URL":     "http://127.0.0.1:9003",
		"FUND_USER_AGENT":  "test-agent",
		"HTTP_RETRY_COUNT": "0",
		"CVM_TIMEOUT":      "2s",
	}

	for key, value := range envVars {
		os.Setenv(key, value)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.AnbimaBaseURL != "http://127.0.0.1:9001" {
		t.Errorf("AnbimaBaseURL = %q, want env override", cfg.AnbimaBaseURL)
	}
	if cfg.VortxBaseURL != "http://127.0.0.1:9002" {
		t.Errorf("VortxBaseURL = %q, want env override", cfg.VortxBaseURL)
	}
	if cfg.CVMBaseURL != "http://127.0.0.1:9003" {
		t.Errorf("CVMBaseURL = %q, want env override", cfg.CVMBaseURL)
	}
	if cfg.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q, want env override", cfg.UserAgent)
	}
	if cfg.HTTPRetryCount != 0 {
		t.Errorf("HTTPRetryCount = %d, want 0", cfg.HTTPRetryCount)
	}
	if cfg.CVMTimeout != 2*time.Second {
		t.Errorf("CVMTimeout = %v, want 2s", cfg.CVMTimeout)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	os.Setenv("ANBIMA_TIMEOUT", "0s")
	defer os.Unsetenv("ANBIMA_TIMEOUT")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for zero timeout, got nil")
	}
	if !strings.Contains(err.Error(), "ANBIMA_TIMEOUT") {
		t.Errorf("error = %v, want it to name ANBIMA_TIMEOUT", err)
	}
}

func TestClientConfig(t *testing.T) {
	cfg := &Config{
		UserAgent:      "ua",
		Accept:         "text/html",
		HTTPRetryCount: 3,
	}

	cc := cfg.ClientConfig()
	if cc.UserAgent != "ua" || cc.Accept != "text/html" || cc.RetryCount != 3 {
		t.Errorf("ClientConfig() = %+v, want fields carried over", cc)
	}
}

package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if cfg.BaseURL == "" {
		t.Error("default BaseURL is empty")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Station != "" || cfg.Date != "" {
		t.Error("station/date should default to empty")
	}
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("api.base_url", "http://localhost:8080")
	v.Set("api.timeout", "5s")
	v.Set("log.level", "debug")
	v.Set("station", "TK")
	v.Set("date", "2024/3/5")

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %s, unexpected", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	// Date is passed through raw; normalization happens at the UI boundary
	if cfg.Date != "2024/3/5" {
		t.Errorf("Date = %q, want raw value", cfg.Date)
	}
}

func TestFromViper_InvalidValues(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("api.timeout", "not-a-duration")
	if _, err := FromViper(v); err == nil {
		t.Error("expected error for invalid timeout")
	}

	v = viper.New()
	SetDefaults(v)
	v.Set("log.level", "loud")
	if _, err := FromViper(v); err == nil {
		t.Error("expected error for invalid log level")
	}
}

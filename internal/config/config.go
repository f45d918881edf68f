package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the application needs at startup. It is built
// once from viper and injected; nothing downstream reads flags, files or
// the environment directly.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel slog.Level
	LogFile  string

	// Station and Date preselect a query and skip the interactive
	// picker, the CLI analogue of a shareable link.
	Station string
	Date    string
}

// SetDefaults registers the default values for every config key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://tide.fishinglabs.jp/api")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("station", "")
	v.SetDefault("date", "")
}

// FromViper builds a Config from the given viper instance
func FromViper(v *viper.Viper) (Config, error) {
	timeout, err := time.ParseDuration(v.GetString("api.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid api.timeout %q: %w", v.GetString("api.timeout"), err)
	}

	level, err := parseLogLevel(v.GetString("log.level"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		BaseURL:  v.GetString("api.base_url"),
		Timeout:  timeout,
		LogLevel: level,
		LogFile:  v.GetString("log.file"),
		Station:  v.GetString("station"),
		Date:     v.GetString("date"),
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q (allowed: debug, info, warn, error)", s)
	}
}

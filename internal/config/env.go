package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from ARCHDUKE_* environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("ARCHDUKE_SEED"); v != "" {
		cfg.SeedFile = v
		setEnv("seed_file")
	}
	if v := os.Getenv("ARCHDUKE_LOG_DIR"); v != "" {
		cfg.LogDir = v
		setEnv("log_dir")
	}
	if v := os.Getenv("ARCHDUKE_PROMPT"); v != "" {
		cfg.Prompt = v
		setEnv("prompt")
	}
	if v := os.Getenv("ARCHDUKE_UI"); v != "" {
		cfg.UI = v
		setEnv("ui")
	}

	// Logging configuration
	if v := os.Getenv("ARCHDUKE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv("ARCHDUKE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv("ARCHDUKE_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv("ARCHDUKE_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		setEnv("log_caller")
	}
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

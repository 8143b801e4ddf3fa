package config

import "flag"

// parseFlags defines the global flags on fs, parses args, and applies the
// flags that were set explicitly. If sources is non-nil, it tracks the
// source of each value.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("archduke", flag.ContinueOnError)
	}

	var (
		seedFile, logDir, prompt, ui string
		logLevel, logFormat          string
		logTimestamps, logCaller     bool
	)
	fs.StringVar(&seedFile, "seed", cfg.SeedFile, "JSON seed document with projects to load at startup")
	fs.StringVar(&logDir, "log-dir", cfg.LogDir, "Write logs to a per-session file in this directory")
	fs.StringVar(&prompt, "prompt", cfg.Prompt, "Input prompt")
	fs.StringVar(&ui, "ui", cfg.UI, "Front end (plain, tui)")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&logTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&logCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Map flag names to config field names
	flagToField := map[string]string{
		"seed":           "seed_file",
		"log-dir":        "log_dir",
		"prompt":         "prompt",
		"ui":             "ui",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}

	// Apply only the flags that were set
	fs.Visit(func(f *flag.Flag) {
		field, ok := flagToField[f.Name]
		if !ok {
			return
		}
		switch f.Name {
		case "seed":
			cfg.SeedFile = seedFile
		case "log-dir":
			cfg.LogDir = logDir
		case "prompt":
			cfg.Prompt = prompt
		case "ui":
			cfg.UI = ui
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		case "log-timestamps":
			cfg.LogTimestamps = logTimestamps
		case "log-caller":
			cfg.LogCaller = logCaller
		}
		if sources != nil {
			sources[field] = SourceFlag
		}
	})

	return nil
}

package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# ArchDuke configuration file
# Values can be overridden by ARCHDUKE_* environment variables or CLI flags

# JSON document with projects to load at startup (relative to the working directory)
# seed_file = "projects.json"

# Write logs to a per-session file in this directory (supports ~ expansion).
# When empty, logs go to stderr.
# log_dir = "~/.archduke/logs"

# Logging
log_level = "warn"     # debug, info, warn, error
log_format = "text"    # text, json, logfmt
log_timestamps = false
log_caller = false

# Console
prompt = "> "
ui = "plain"           # plain or tui
`
}

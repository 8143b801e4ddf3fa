package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, user file first.
	Files []string
}

// Front ends.
const (
	UIPlain = "plain"
	UITUI   = "tui"
)

// Default values.
const (
	DefaultPrompt    = "> "
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultUI        = UIPlain
)

// Config holds the full configuration for archduke.
type Config struct {
	// Optional JSON document used to pre-populate projects
	SeedFile string `toml:"seed_file"`

	// Per-session log files go here when set; otherwise logs go to stderr
	LogDir string `toml:"log_dir"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Console
	Prompt string `toml:"prompt"`
	UI     string `toml:"ui"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"seed_file",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"prompt",
		"ui",
	}
}

// Value returns the configured value of a field by its TOML name.
func (c *Config) Value(field string) any {
	switch field {
	case "seed_file":
		return c.SeedFile
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return c.LogTimestamps
	case "log_caller":
		return c.LogCaller
	case "prompt":
		return c.Prompt
	case "ui":
		return c.UI
	}
	return nil
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

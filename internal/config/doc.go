// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.archduke/archduke.toml or OS-specific config directory)
// 3. Project config file (archduke.toml or .archduke.toml in the working directory)
// 4. Environment variables (ARCHDUKE_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.archduke/archduke.toml (preferred)
// - Windows: %APPDATA%\archduke\archduke.toml
// - macOS: ~/Library/Application Support/archduke/archduke.toml
// - Linux/BSD: $XDG_CONFIG_HOME/archduke/archduke.toml or ~/.config/archduke/archduke.toml
//
// Project-level config locations (overrides user config):
// - ./archduke.toml (preferred)
// - ./.archduke.toml
package config

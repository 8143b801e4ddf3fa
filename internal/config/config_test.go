package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// isolate points the user config lookups and the working directory at fresh
// temp dirs and clears ARCHDUKE_* variables.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "ARCHDUKE_") {
			t.Setenv(name, "")
		}
	}
	chdirTest(t, work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt: got %q, want %q", cfg.Prompt, DefaultPrompt)
	}
	if cfg.UI != UIPlain {
		t.Errorf("UI: got %q, want %q", cfg.UI, UIPlain)
	}
	if cfg.SeedFile != "" || cfg.LogDir != "" {
		t.Errorf("paths should default to empty, got seed=%q log_dir=%q", cfg.SeedFile, cfg.LogDir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARCHDUKE_SEED", "projects.json")
	t.Setenv("ARCHDUKE_LOG_LEVEL", "debug")
	t.Setenv("ARCHDUKE_LOG_TIMESTAMPS", "yes")
	t.Setenv("ARCHDUKE_PROMPT", "archduke> ")
	t.Setenv("ARCHDUKE_UI", "tui")

	cfg := &Config{}
	setDefaults(cfg)
	sources := make(map[string]ConfigSource)
	loadFromEnv(cfg, sources)

	if cfg.SeedFile != "projects.json" {
		t.Errorf("SeedFile: got %q", cfg.SeedFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false")
	}
	if cfg.Prompt != "archduke> " || cfg.UI != "tui" {
		t.Errorf("Prompt/UI: got %q/%q", cfg.Prompt, cfg.UI)
	}
	if sources["seed_file"] != SourceEnv || sources["log_format"] != "" {
		t.Errorf("sources: got %v", sources)
	}
}

func TestLoadConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "archduke.toml")
	writeFile(t, configFile, `seed_file = "seed.json"
log_level = "info"
log_caller = true
`)

	cfg := &Config{}
	setDefaults(cfg)
	sources := make(map[string]ConfigSource)
	if err := loadConfigFile(cfg, configFile, sources, SourceProjFile); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.SeedFile != "seed.json" {
		t.Errorf("SeedFile: got %q, want seed.json", cfg.SeedFile)
	}
	if cfg.LogLevel != "info" || !cfg.LogCaller {
		t.Errorf("logging: got level=%q caller=%v", cfg.LogLevel, cfg.LogCaller)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt should keep its default, got %q", cfg.Prompt)
	}
	if sources["seed_file"] != SourceProjFile || sources["prompt"] != "" {
		t.Errorf("sources: got %v", sources)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed", "log_level = \n", ""},
		{"unknown key", "colour = \"blue\"\n", "unknown keys: colour"},
		{"wrong type", "log_caller = \"maybe\"\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".toml")
			writeFile(t, path, tt.content)

			cfg := &Config{}
			err := loadConfigFile(cfg, path, nil, SourceUserFile)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestExampleConfigDecodes(t *testing.T) {
	cfg := &Config{}
	md, err := toml.Decode(ExampleConfig(), cfg)
	if err != nil {
		t.Fatalf("example config does not decode: %v", err)
	}
	if len(md.Undecoded()) > 0 {
		t.Errorf("example config has unknown keys: %v", md.Undecoded())
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.UI != DefaultUI {
		t.Errorf("example disagrees with defaults: %+v", cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("ARCHDUKE_TEST_DIR", "/var/tmp")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~/logs", filepath.Join(home, "logs")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
		{"$ARCHDUKE_TEST_DIR/logs", "/var/tmp/logs"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := expandPath(tt.input)
			if got != tt.want {
				t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.LogLevel = "info"

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args := []string{"-seed", "flag-seed.json", "-log-format", "json", "-ui", "tui", "run"}
	sources := make(map[string]ConfigSource)

	if err := parseFlags(cfg, fs, args, sources); err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if cfg.SeedFile != "flag-seed.json" {
		t.Errorf("SeedFile: got %q, want flag-seed.json", cfg.SeedFile)
	}
	if cfg.LogFormat != "json" || cfg.UI != "tui" {
		t.Errorf("LogFormat/UI: got %q/%q", cfg.LogFormat, cfg.UI)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unset flag changed LogLevel to %q", cfg.LogLevel)
	}
	if sources["seed_file"] != SourceFlag || sources["log_level"] != "" {
		t.Errorf("sources: got %v", sources)
	}
	if got := fs.Args(); len(got) != 1 || got[0] != "run" {
		t.Errorf("remaining args: got %v", got)
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := boolFromString(tt.input); got != tt.want {
				t.Errorf("boolFromString(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadLayering(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".archduke", "archduke.toml"), `log_level = "info"
prompt = "user> "
seed_file = "user-seed.json"
`)
	writeFile(t, filepath.Join(work, "archduke.toml"), `prompt = "project> "
`)
	t.Setenv("ARCHDUKE_LOG_LEVEL", "error")

	fs := flag.NewFlagSet("archduke", flag.ContinueOnError)
	cws, err := LoadWithSources(fs, []string{"-log-format", "logfmt"})
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config

	if cfg.Prompt != "project> " || cws.Sources["prompt"] != SourceProjFile {
		t.Errorf("prompt: got %q from %s", cfg.Prompt, cws.Sources["prompt"])
	}
	if cfg.LogLevel != "error" || cws.Sources["log_level"] != SourceEnv {
		t.Errorf("log_level: got %q from %s", cfg.LogLevel, cws.Sources["log_level"])
	}
	if cfg.LogFormat != "logfmt" || cws.Sources["log_format"] != SourceFlag {
		t.Errorf("log_format: got %q from %s", cfg.LogFormat, cws.Sources["log_format"])
	}
	if cws.Sources["ui"] != SourceDefault {
		t.Errorf("ui source: got %s", cws.Sources["ui"])
	}
	if cws.Sources["seed_file"] != SourceUserFile {
		t.Errorf("seed_file source: got %s", cws.Sources["seed_file"])
	}
	if !filepath.IsAbs(cfg.SeedFile) || filepath.Base(cfg.SeedFile) != "user-seed.json" {
		t.Errorf("SeedFile should be made absolute, got %q", cfg.SeedFile)
	}
	if len(cws.Files) != 2 {
		t.Errorf("Files: got %v, want user and project files", cws.Files)
	}
}

func TestLoadXDGUserConfig(t *testing.T) {
	home, _ := isolate(t)
	if osUserConfigDir() != filepath.Join(home, ".config") {
		t.Skip("XDG config dir not used on this platform")
	}
	writeFile(t, filepath.Join(home, ".config", "archduke", "archduke.toml"), "ui = \"tui\"\n")

	cfg, err := Load(flag.NewFlagSet("archduke", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI != UITUI {
		t.Errorf("UI: got %q, want tui", cfg.UI)
	}
}

func TestLoadRejectsBadProjectFile(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, ".archduke.toml"), "log_level = [\n")

	_, err := Load(flag.NewFlagSet("archduke", flag.ContinueOnError), nil)
	if err == nil || !strings.Contains(err.Error(), ".archduke.toml") {
		t.Fatalf("Load error = %v, want one naming the file", err)
	}
}

func TestFinalizeConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantUI  string
		wantErr bool
	}{
		{"empty ui", Config{WorkDir: "/w"}, UIPlain, false},
		{"mixed case", Config{WorkDir: "/w", UI: " TUI "}, UITUI, false},
		{"unknown ui", Config{WorkDir: "/w", UI: "gui"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := finalizeConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("finalizeConfig error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.UI != tt.wantUI {
				t.Errorf("UI: got %q, want %q", cfg.UI, tt.wantUI)
			}
			if err == nil && cfg.Prompt != DefaultPrompt {
				t.Errorf("Prompt: got %q, want default", cfg.Prompt)
			}
		})
	}
}

// chdirTest changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (unavailable before Go 1.24).
func chdirTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

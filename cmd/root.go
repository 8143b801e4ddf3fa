// Package cmd implements the CLI command structure for archduke.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/archduke-go/internal/config"
	"github.com/nibzard/archduke-go/internal/logging"
	"github.com/nibzard/archduke-go/internal/project"
	"github.com/nibzard/archduke-go/internal/repl"
	"github.com/nibzard/archduke-go/internal/seed"
	"github.com/nibzard/archduke-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the archduke CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("archduke", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	loaded, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := loaded.Config
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "run":
		return runCommand(ctx, cfg, remainingArgs)
	case "tui":
		cfg.UI = config.UITUI
		return runCommand(ctx, cfg, remainingArgs)
	case "config":
		return configCommand(loaded, remainingArgs)
	case "seed":
		return seedCommand(remainingArgs)
	case "logs":
		return logsCommand(cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// runCommand starts an interactive session on the terminal.
func runCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	logger, sessionLog, err := logging.Setup(stderr, cfg.LogDir, cfg.WorkDir,
		logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer sessionLog.Close()

	repo := project.NewRepository()
	if cfg.SeedFile != "" {
		if err := applySeed(repo, cfg.SeedFile, logger); err != nil {
			return err
		}
	}

	session := repl.NewSession(repo, repl.WithLogger(logger))
	logger.Debug("session started", "ui", cfg.UI, "projects", repo.Len())

	if cfg.UI == config.UITUI {
		return ui.RunTUI(ctx, session, ui.WithPrompt(cfg.Prompt), ui.WithOutput(stdout))
	}
	return repl.Run(ctx, session, repl.NewReaderSource(stdin), stdout, cfg.Prompt)
}

func applySeed(repo *project.Repository, path string, logger *log.Logger) error {
	doc, err := seed.Load(path)
	if err != nil {
		return err
	}
	n, err := doc.Apply(repo)
	if err != nil {
		return fmt.Errorf("seed file %s: %w", path, err)
	}
	logger.Info("seeded projects", "file", path, "count", n)
	return nil
}

// configCommand prints an example config file, or the effective
// configuration with the source of each value.
func configCommand(loaded *config.ConfigWithSources, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	}
	if args[0] != "show" || len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	if len(loaded.Files) == 0 {
		fmt.Fprintln(stdout, "Config files: (none)")
	} else {
		fmt.Fprintln(stdout, "Config files:")
		for _, f := range loaded.Files {
			fmt.Fprintf(stdout, "  %s\n", f)
		}
	}
	fmt.Fprintln(stdout)
	for _, field := range config.Fields() {
		fmt.Fprintf(stdout, "%-15s = %-20v (%s)\n", field, formatValue(loaded.Config.Value(field)), loaded.Sources[field])
	}
	return nil
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}

// seedCommand prints the bundled seed schema or checks a seed document.
func seedCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("seed requires a subcommand: schema or check <file>")
	}
	switch args[0] {
	case "schema":
		if len(args) > 1 {
			return fmt.Errorf("unexpected arguments: %v", args[1:])
		}
		_, err := stdout.Write(seed.BundledSchema())
		return err
	case "check":
		if len(args) != 2 {
			return fmt.Errorf("seed check requires exactly one file")
		}
		return checkSeed(args[1])
	default:
		return fmt.Errorf("unknown seed subcommand: %s", args[0])
	}
}

func checkSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	if errs := seed.Validate(data); len(errs) > 0 {
		fmt.Fprintf(stdout, "%s: invalid\n", path)
		for _, e := range errs {
			fmt.Fprintf(stdout, "  - %v\n", e)
		}
		return fmt.Errorf("seed file %s failed validation", path)
	}

	doc, err := seed.Parse(data)
	if err != nil {
		return err
	}
	projects, err := doc.Build()
	if err != nil {
		fmt.Fprintf(stdout, "%s: invalid\n", path)
		fmt.Fprintf(stdout, "  - %v\n", err)
		return fmt.Errorf("seed file %s failed validation", path)
	}

	fmt.Fprintf(stdout, "%s: valid (%d project(s))\n", path, len(projects))
	for i, p := range projects {
		fmt.Fprintf(stdout, "  %d. %s (%d members, %d tasks, %d reminders)\n",
			i+1, p.Description(), p.NumMembers(), p.NumTasks(), p.NumReminders())
	}
	return nil
}

// logsCommand prints the latest session log.
func logsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("archduke logs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if cfg.LogDir == "" {
		return fmt.Errorf("no log directory configured (set log_dir or ARCHDUKE_LOG_DIR)")
	}
	logDir := cfg.LogDir
	if !filepath.IsAbs(logDir) && cfg.WorkDir != "" {
		logDir = filepath.Join(cfg.WorkDir, logDir)
	}

	logPath, err := logging.FindLatestLog(logDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(stdout, "No log files found.")
		return nil
	}
	fmt.Fprintf(stdout, "Showing: %s\n\n", logPath)
	return logging.TailLog(stdout, logPath, *n)
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Fprintf(stdout, "archduke version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "ArchDuke - a console project manager for small teams")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  archduke [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                Start an interactive session (default command)")
	fmt.Fprintln(w, "  tui                Start a session in the terminal UI")
	fmt.Fprintln(w, "  config [show]      Print an example config, or the effective config")
	fmt.Fprintln(w, "  seed schema        Print the seed document JSON Schema")
	fmt.Fprintln(w, "  seed check <file>  Validate a seed document")
	fmt.Fprintln(w, "  logs [-n N]        Print the latest session log")
	fmt.Fprintln(w, "  version            Show version information")
	fmt.Fprintln(w, "  help               Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

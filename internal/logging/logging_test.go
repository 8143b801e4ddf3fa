package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// TestNewSessionLog tests creating a new session log.
func TestNewSessionLog(t *testing.T) {
	t.Run("successful creation with valid paths", func(t *testing.T) {
		dir := t.TempDir()

		s, err := NewSessionLog(dir, t.TempDir())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		if s.SessionID == "" {
			t.Error("expected SessionID to be set")
		}
		if s.Path != filepath.Join(dir, s.SessionID+".log") {
			t.Errorf("unexpected Path %q", s.Path)
		}
		if _, err := os.Stat(s.Path); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := NewSessionLog("", t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Fatalf("expected empty dir error, got %v", err)
		}
	})

	t.Run("creates nested log directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs", "nested")

		s, err := NewSessionLog(dir, "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		if _, err := os.Stat(dir); err != nil {
			t.Errorf("log directory not created: %v", err)
		}
	})

	t.Run("relative base dir resolves against work dir", func(t *testing.T) {
		work := t.TempDir()

		s, err := NewSessionLog("logs", work)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer s.Close()

		if s.Dir != filepath.Join(work, "logs") {
			t.Errorf("Dir = %q, want %q", s.Dir, filepath.Join(work, "logs"))
		}
	})
}

func TestSessionLogClose(t *testing.T) {
	var nilLog *SessionLog
	if err := nilLog.Close(); err != nil {
		t.Errorf("nil Close() = %v", err)
	}
	if err := (&SessionLog{}).Close(); err != nil {
		t.Errorf("Close() without file = %v", err)
	}
}

func TestSessionID(t *testing.T) {
	id := sessionID(time.Date(2026, 10, 19, 8, 5, 3, 0, time.UTC))
	if !regexp.MustCompile(`^20261019-080503-\d+$`).MatchString(id) {
		t.Errorf("sessionID = %q", id)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.WarnLevel},
		{"loud", log.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		input string
		want  log.Formatter
	}{
		{"json", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"text", log.TextFormatter},
		{"", log.TextFormatter},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormatter(tt.input); got != tt.want {
				t.Errorf("ParseFormatter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetupConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, session, err := Setup(&buf, "", "", OptionsFromConfig("info", "logfmt", false, false))
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if session != nil {
		t.Error("expected no session log without a log dir")
	}

	logger.Debug("hidden")
	logger.Info("created project", "project", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "project=abc") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSetupSessionFile(t *testing.T) {
	var console bytes.Buffer
	dir := t.TempDir()

	logger, session, err := Setup(&console, dir, "", OptionsFromConfig("debug", "text", false, false))
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	logger.Info("entered project", "project", "abc")
	if err := session.Close(); err != nil {
		t.Fatal(err)
	}

	if console.Len() != 0 {
		t.Errorf("console got output with a log dir: %q", console.String())
	}
	data, err := os.ReadFile(session.Path)
	if err != nil {
		t.Fatal(err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("log record is not JSON: %v (%q)", err, data)
	}
	if record["msg"] != "entered project" || record["project"] != "abc" || record["session"] != session.SessionID {
		t.Errorf("unexpected record %v", record)
	}
	if _, ok := record["time"]; !ok {
		t.Error("expected a timestamp in session log records")
	}
}

func TestFindLatestLog(t *testing.T) {
	dir := t.TempDir()

	if got, err := FindLatestLog(filepath.Join(dir, "missing")); err != nil || got != "" {
		t.Fatalf("missing dir: got %q, %v", got, err)
	}

	older := filepath.Join(dir, "20260101-000000-1.log")
	newer := filepath.Join(dir, "20260102-000000-1.log")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{older, newer, other} {
		if err := os.WriteFile(p, []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	now := time.Now()
	os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour))
	os.Chtimes(newer, now, now)
	os.Chtimes(other, now.Add(time.Hour), now.Add(time.Hour))

	got, err := FindLatestLog(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != newer {
		t.Errorf("FindLatestLog() = %q, want %q", got, newer)
	}
}

func TestTailLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.log")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		n    int
		want string
	}{
		{0, "one\ntwo\nthree\n"},
		{2, "two\nthree\n"},
		{10, "one\ntwo\nthree\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := TailLog(&buf, path, tt.n); err != nil {
			t.Fatalf("TailLog(%d) error = %v", tt.n, err)
		}
		if buf.String() != tt.want {
			t.Errorf("TailLog(%d) = %q, want %q", tt.n, buf.String(), tt.want)
		}
	}

	if err := TailLog(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.log"), 1); err == nil {
		t.Error("expected error for missing file")
	}
}

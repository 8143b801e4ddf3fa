// Package logging sets up charmbracelet/log loggers and per-session log files.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// logExt is the extension of session log files.
const logExt = ".log"

// SessionLog manages the log file of one interactive session.
type SessionLog struct {
	Dir       string
	SessionID string
	Path      string
	file      *os.File
}

// NewSessionLog creates baseDir if needed and opens <baseDir>/<session id>.log.
// A relative baseDir is resolved against workDir.
func NewSessionLog(baseDir, workDir string) (*SessionLog, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("log base dir is empty")
	}

	dir := resolveBaseDir(baseDir, workDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := sessionID(time.Now())
	path := filepath.Join(dir, id+logExt)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &SessionLog{
		Dir:       dir,
		SessionID: id,
		Path:      path,
		file:      file,
	}, nil
}

// Writer returns the underlying log file writer.
func (s *SessionLog) Writer() io.Writer {
	return s.file
}

// Close closes the log file.
func (s *SessionLog) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

func resolveBaseDir(baseDir, workDir string) string {
	if filepath.IsAbs(baseDir) {
		return filepath.Clean(baseDir)
	}
	if workDir == "" {
		workDir = "."
	}
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	return filepath.Clean(filepath.Join(workDir, baseDir))
}

func sessionID(now time.Time) string {
	return fmt.Sprintf("%s-%d", now.UTC().Format("20060102-150405"), os.Getpid())
}

// FindLatestLog returns the most recently modified session log in logDir,
// or "" when there is none.
func FindLatestLog(logDir string) (string, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read log dir: %w", err)
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), logExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latest = filepath.Join(logDir, entry.Name())
		}
	}
	return latest, nil
}

// TailLog copies the last n lines of the file at path to w. A non-positive
// n copies the whole file.
func TailLog(w io.Writer, path string, n int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if n > 0 {
		data = lastLines(data, n)
	}
	_, err = w.Write(data)
	return err
}

func lastLines(data []byte, n int) []byte {
	end := len(data)
	if end > 0 && data[end-1] == '\n' {
		end--
	}
	for i := end - 1; i >= 0; i-- {
		if data[i] == '\n' {
			n--
			if n == 0 {
				return data[i+1:]
			}
		}
	}
	return data
}

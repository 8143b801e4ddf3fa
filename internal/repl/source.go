package repl

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// LineSource yields input lines one at a time. ReadLine returns io.EOF when
// no more lines are available.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// ReaderSource reads lines from an io.Reader. The scan runs in its own
// goroutine so that a blocked read does not hold up cancellation.
//
// A cancelled ReadLine stops the source: the scanner goroutine exits once its
// pending read returns, and later calls report io.EOF.
type ReaderSource struct {
	r        io.Reader
	once     sync.Once
	stopOnce sync.Once
	lines    chan string
	stop     chan struct{}
	err      error
}

// NewReaderSource wraps r as a LineSource.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r, lines: make(chan string), stop: make(chan struct{})}
}

func (s *ReaderSource) start() {
	go func() {
		defer close(s.lines)
		scanner := bufio.NewScanner(s.r)
		for scanner.Scan() {
			select {
			case <-s.stop:
				return
			default:
			}
			select {
			case s.lines <- scanner.Text():
			case <-s.stop:
				return
			}
		}
		s.err = scanner.Err()
	}()
}

// ReadLine returns the next line, or ctx.Err() if ctx is done first.
func (s *ReaderSource) ReadLine(ctx context.Context) (string, error) {
	s.once.Do(s.start)
	select {
	case <-ctx.Done():
		s.stopOnce.Do(func() { close(s.stop) })
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			if s.err != nil {
				return "", s.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// SliceSource replays a fixed list of lines.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource returns a source over lines.
func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Lines splits a script on newlines into a SliceSource.
func Lines(script string) *SliceSource {
	script = strings.TrimSuffix(script, "\n")
	if script == "" {
		return NewSliceSource()
	}
	return NewSliceSource(strings.Split(script, "\n")...)
}

func (s *SliceSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Package datetime parses and formats the dates used in commands.
package datetime

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InputLayout is the layout accepted in commands (dd/MM/yyyy).
	InputLayout = "02/01/2006"
	// DisplayLayout is the layout used when printing dates (dd MMM yyyy).
	DisplayLayout = "02 Jan 2006"
)

// Parse parses a dd/MM/yyyy date. Single-digit day and month are accepted.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(InputLayout, s)
	if err == nil {
		return t, nil
	}
	if t, err2 := time.Parse("2/1/2006", s); err2 == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected dd/MM/yyyy", s)
}

// Format renders a date for display.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// Package date handles the YYYY-MM-DD calendar dates used by the todo.txt format.
package date

import (
	"time"
)

// Layout is the only date format the todo.txt grammar allows.
const Layout = "2006-01-02"

// InvalidFormatError is returned when a string is not a valid YYYY-MM-DD date.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return "invalid date format: " + e.Input
}

// Parse parses a strict YYYY-MM-DD date.
// It rejects anything that is not exactly 10 characters or not a real
// calendar day (e.g. 2024-02-30).
func Parse(s string) (time.Time, error) {
	if len(s) != len(Layout) {
		return time.Time{}, &InvalidFormatError{Input: s}
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, &InvalidFormatError{Input: s}
	}
	return t, nil
}

// Format renders a date in the YYYY-MM-DD layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// StartOfDay strips the time component off a timestamp.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

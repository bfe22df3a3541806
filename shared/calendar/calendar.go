// Package calendar handles pure calendar dates. Check-in and check-out are
// dates without a time of day; the canonical date authority is the UTC
// calendar date, so a "day" boundary never shifts with the server timezone.
package calendar

import (
	"fmt"
	"time"
)

const DateFormat = "2006-01-02"

// Date truncates t to its UTC calendar date (midnight UTC).
func Date(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return Date(time.Now())
}

// Parse parses a YYYY-MM-DD value into a UTC calendar date.
func Parse(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return t, nil
}

// Format renders a calendar date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

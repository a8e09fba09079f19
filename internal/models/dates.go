package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format used by the backend and the CLI.
const DateLayout = "2006-01-02"

// MonthLayout identifies a calendar month.
const MonthLayout = "2006-01"

// DateOf truncates t to its calendar day at midnight UTC. The day is taken
// in t's own location so a backend timestamp keeps the date it was sent with.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseCalendarDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns
// the calendar day.
func ParseCalendarDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// ParseMonth parses YYYY-MM into the first day of that month.
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", value, err)
	}
	return t, nil
}

// FormatDate renders a calendar date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

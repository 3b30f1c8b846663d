// Package timeutil provides date and time-of-day helpers for agendas.
//
// Meetings are configured as a calendar date plus a wall-clock start
// time. This package parses both from user input, combines them into
// a single instant, and formats instants for the table, the summary
// line and the exports.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the display format for meeting dates: "DD/MM/YYYY".
	DateLayout = "02/01/2006"
	// ISODateLayout is accepted on input (HTML date inputs send it).
	ISODateLayout = "2006-01-02"
	// ClockLayout is the display format for times of day: "HH:MM".
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time of day")
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ClockOf extracts the time of day from t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClock parses "HH:MM" (a single-digit hour is accepted).
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return ClockOf(t), nil
}

// ParseDate parses "DD/MM/YYYY" or "YYYY-MM-DD" into midnight of that
// day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{DateLayout, ISODateLayout} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Combine joins a calendar date and a time of day into one instant,
// in the date's location.
func Combine(date time.Time, c Clock) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, date.Location())
}

// Today returns midnight of the current day in loc.
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// FormatClock formats an instant as "HH:MM".
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDate formats an instant as "DD/MM/YYYY".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMinutes formats a minute count for compact display.
// Examples: "45m", "1h", "1h 10m"
func FormatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	h, m := min/60, min%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

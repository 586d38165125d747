// Package calendar holds the day-granularity date arithmetic used by the
// scheduling engine. Every value is normalized to a UTC calendar day so that
// comparisons never depend on clock time or display format.
package calendar

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical storage format for a calendar day.
const KeyLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day truncates t to midnight UTC of the same calendar date. The date is read
// in t's own location before conversion, so 2026-01-02T23:30-05:00 stays the 2nd.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns b - a in whole days. The result is negative when b is
// before a. It works on Unix seconds because time.Duration overflows past
// about 292 years.
func DaysBetween(a, b time.Time) int {
	return int((Day(b).Unix() - Day(a).Unix()) / secondsPerDay)
}

// AddDays shifts d by n calendar days.
func AddDays(d time.Time, n int) time.Time {
	return Day(d).AddDate(0, 0, n)
}

// Duration is the inclusive length of [start, end] in days, clamped to at
// least one. An inverted range is silently treated as a single day.
func Duration(start, end time.Time) int {
	n := DaysBetween(start, end) + 1
	if n < 1 {
		return 1
	}
	return n
}

// Before reports whether day a is strictly before day b.
func Before(a, b time.Time) bool {
	return Day(a).Before(Day(b))
}

// Max returns the later of two days.
func Max(a, b time.Time) time.Time {
	if Before(a, b) {
		return Day(b)
	}
	return Day(a)
}

// FormatKey renders d in the canonical YYYY-MM-DD form.
func FormatKey(d time.Time) string {
	return Day(d).Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD string into a calendar day.
func ParseKey(s string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatShort renders d the way the task table shows it, e.g. "05 Jan".
func FormatShort(d time.Time) string {
	return Day(d).Format("02 Jan")
}

// FormatMonth renders the header of a month view, e.g. "January 2026".
func FormatMonth(d time.Time) string {
	return Day(d).Format("January 2006")
}

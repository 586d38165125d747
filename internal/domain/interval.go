package domain

import (
	"fmt"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
)

// Interval is an inclusive range of calendar days.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds a day-normalized interval.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: calendar.Day(start), End: calendar.Day(end)}
}

// Duration is the inclusive length in days, never less than one.
func (iv Interval) Duration() int {
	return calendar.Duration(iv.Start, iv.End)
}

// Normalize truncates both ends to calendar days and repairs an inverted
// range by collapsing it to a single day at Start.
func (iv Interval) Normalize() Interval {
	start := calendar.Day(iv.Start)
	end := calendar.Day(iv.End)
	if end.Before(start) {
		end = start
	}
	return Interval{Start: start, End: end}
}

// WithStart moves the interval so it begins at start, keeping its duration.
func (iv Interval) WithStart(start time.Time) Interval {
	d := iv.Duration()
	return Interval{Start: calendar.Day(start), End: calendar.AddDays(start, d-1)}
}

// WithEnd moves the interval so it finishes at end, keeping its duration.
func (iv Interval) WithEnd(end time.Time) Interval {
	d := iv.Duration()
	return Interval{Start: calendar.AddDays(end, -(d - 1)), End: calendar.Day(end)}
}

// Equal compares by calendar day.
func (iv Interval) Equal(other Interval) bool {
	return calendar.FormatKey(iv.Start) == calendar.FormatKey(other.Start) &&
		calendar.FormatKey(iv.End) == calendar.FormatKey(other.End)
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s..%s", calendar.FormatKey(iv.Start), calendar.FormatKey(iv.End))
}

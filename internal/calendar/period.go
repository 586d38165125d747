package calendar

import "time"

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d time.Time) time.Time {
	y, m, _ := d.Date()
	return Date(y, m, 1)
}

// EndOfMonth returns the last day of d's month.
func EndOfMonth(d time.Time) time.Time {
	return StartOfMonth(d).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of days in d's month.
func DaysInMonth(d time.Time) int {
	return EndOfMonth(d).Day()
}

// AddMonths moves to the first day of the month n months away from d.
func AddMonths(d time.Time, n int) time.Time {
	return StartOfMonth(d).AddDate(0, n, 0)
}

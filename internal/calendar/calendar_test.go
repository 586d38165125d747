package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2026-01-02", "2026-01-05", 3},
		{"2026-01-05", "2026-01-02", -3},
		{"2026-01-05", "2026-01-05", 0},
		{"2026-02-27", "2026-03-02", 3},
		{"2024-02-28", "2024-03-01", 2},
		{"2025-12-31", "2026-01-01", 1},
		{"0001-01-01", "2026-01-01", 739616},
		{"2026-01-01", "0001-01-01", -739616},
		{"1600-03-01", "9999-12-31", 3067976},
	}
	for _, tc := range cases {
		a, err := ParseKey(tc.a)
		require.NoError(t, err)
		b, err := ParseKey(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, DaysBetween(a, b), "%s -> %s", tc.a, tc.b)
	}
}

func TestDaysBetween_IgnoresClockTime(t *testing.T) {
	a := time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 1, 3, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestDay_KeepsLocalDate(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	d := Day(time.Date(2026, 1, 2, 23, 30, 0, 0, loc))
	assert.Equal(t, "2026-01-02", FormatKey(d))
	assert.Equal(t, time.UTC, d.Location())
}

func TestAddDays(t *testing.T) {
	d := Date(2026, time.January, 30)
	assert.Equal(t, Date(2026, time.February, 2), AddDays(d, 3))
	assert.Equal(t, Date(2026, time.January, 27), AddDays(d, -3))
	assert.Equal(t, d, AddDays(d, 0))
}

func TestDuration(t *testing.T) {
	start := Date(2026, time.January, 2)
	assert.Equal(t, 4, Duration(start, Date(2026, time.January, 5)))
	assert.Equal(t, 1, Duration(start, start))
}

func TestDuration_MultiCenturySpan(t *testing.T) {
	assert.Equal(t, 739617, Duration(Date(1, time.January, 1), Date(2026, time.January, 1)))
	assert.Equal(t, Date(2026, time.January, 1), AddDays(Date(1, time.January, 1), 739616))
}

func TestDuration_InvertedClampsToOne(t *testing.T) {
	assert.Equal(t, 1, Duration(Date(2026, time.January, 9), Date(2026, time.January, 2)))
}

func TestFormatAndParseKey(t *testing.T) {
	d := Date(2026, time.March, 7)
	assert.Equal(t, "2026-03-07", FormatKey(d))

	parsed, err := ParseKey("2026-03-07")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))

	_, err = ParseKey("07/03/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestFormatShortAndMonth(t *testing.T) {
	d := Date(2026, time.January, 5)
	assert.Equal(t, "05 Jan", FormatShort(d))
	assert.Equal(t, "January 2026", FormatMonth(d))
}

func TestBeforeAndMax(t *testing.T) {
	a := Date(2026, time.January, 2)
	b := Date(2026, time.January, 3)
	assert.True(t, Before(a, b))
	assert.False(t, Before(b, a))
	assert.False(t, Before(a, a))
	assert.Equal(t, b, Max(a, b))
	assert.Equal(t, b, Max(b, a))
}

func TestMonthPeriod(t *testing.T) {
	d := Date(2026, time.February, 17)
	assert.Equal(t, Date(2026, time.February, 1), StartOfMonth(d))
	assert.Equal(t, Date(2026, time.February, 28), EndOfMonth(d))
	assert.Equal(t, 28, DaysInMonth(d))
	assert.Equal(t, 29, DaysInMonth(Date(2024, time.February, 1)))
	assert.Equal(t, Date(2026, time.March, 1), AddMonths(d, 1))
	assert.Equal(t, Date(2025, time.December, 1), AddMonths(d, -2))
}

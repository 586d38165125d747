package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// parseDate reads a stored day key.
func parseDate(column, s string) (time.Time, error) {
	d, err := calendar.ParseKey(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("scanning %s: %w", column, err)
	}
	return d, nil
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
)

// resolveTaskID accepts a full id, a unique id prefix, or a unique title
// (case-insensitive).
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Board.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact id match
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	// 2. Id prefix match
	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	// 3. Title match
	if len(matches) == 0 {
		for _, t := range tasks {
			if strings.EqualFold(t.Title, input) {
				matches = append(matches, t.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", domain.ErrTaskNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDateFlag parses a YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (time.Time, error) {
	d, err := calendar.ParseKey(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

// parseMonth accepts YYYY-MM or a full YYYY-MM-DD day and returns the first
// day of that month.
func parseMonth(value string) (time.Time, error) {
	key := value
	if len(key) == len("2006-01") {
		key += "-01"
	}
	d, err := calendar.ParseKey(key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", value)
	}
	return calendar.StartOfMonth(d), nil
}

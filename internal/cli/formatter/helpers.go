package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed. Short ids are
// shown whole.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DateRange renders an interval as "05 Jan → 09 Jan".
func DateRange(iv domain.Interval) string {
	return fmt.Sprintf("%s → %s", calendar.FormatShort(iv.Start), calendar.FormatShort(iv.End))
}

// FormatDays renders a day count, e.g. "1 day" or "4 days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// Member renders an assignee, dimmed dashes when unassigned.
func Member(m string) string {
	if m == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(m)
}

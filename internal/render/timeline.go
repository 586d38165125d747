package render

import (
	"strings"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Timeline glyphs.
const (
	CellFilled = "█"
	CellEmpty  = "·"
)

const maxTitleWidth = 24

// Timeline renders one text row per task across the month containing
// period, one column per day. Days outside a task's range are dotted.
func Timeline(tasks []domain.Task, period time.Time) string {
	first := calendar.StartOfMonth(period)
	days := calendar.DaysInMonth(first)

	titleWidth := len("Task")
	for _, t := range tasks {
		titleWidth = max(titleWidth, min(lipgloss.Width(t.Title), maxTitleWidth))
	}

	var b strings.Builder
	b.WriteString(calendar.FormatMonth(first))
	b.WriteString("\n")

	b.WriteString(pad("", titleWidth))
	b.WriteString(" │")
	for d := 1; d <= days; d++ {
		b.WriteByte(byte('0' + d%10))
	}
	b.WriteString("│\n")

	for _, t := range tasks {
		b.WriteString(pad(truncate(t.Title, titleWidth), titleWidth))
		b.WriteString(" │")
		for d := 0; d < days; d++ {
			day := calendar.AddDays(first, d)
			if covers(t, day) {
				b.WriteString(CellFilled)
			} else {
				b.WriteString(CellEmpty)
			}
		}
		b.WriteString("│\n")
	}
	return b.String()
}

func covers(t domain.Task, day time.Time) bool {
	return !calendar.Before(day, t.Start) && !calendar.Before(t.End, day)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

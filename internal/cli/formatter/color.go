package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusPill returns a colored indicator for a task status.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.StatusNew:
		return StyleBlue.Render("✦ New")
	case domain.StatusNotStarted:
		return StyleFg.Render("○ Not Started")
	case domain.StatusInProgress:
		return StyleYellow.Render("● In Progress")
	case domain.StatusDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// ImpactBadge colors an impact level by severity.
func ImpactBadge(impact domain.Impact) string {
	switch impact {
	case domain.ImpactHigh:
		return StyleRed.Render("▲ High")
	case domain.ImpactMedium:
		return StyleYellow.Render("■ Medium")
	case domain.ImpactLow:
		return StyleGreen.Render("▼ Low")
	default:
		return StyleDim.Render(string(impact))
	}
}

// KindStyle renders text in the arrow color of a relation kind, so the
// terminal matches the exported chart.
func KindStyle(kind domain.RelationKind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(route.ColorFor(kind))).Bold(true)
}

// KindBadge renders a relation kind code in its arrow color.
func KindBadge(kind domain.RelationKind) string {
	return KindStyle(kind).Render(string(kind))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Package route computes the screen geometry of the chart: where each task
// bar sits, where its Start and End anchors are, and the orthogonal paths
// that connect anchors for dependency arrows.
package route

import (
	"math"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
)

// Default geometry, in pixels.
const (
	DefaultDayWidth     = 60
	DefaultRowHeight    = 48
	DefaultBarHeight    = 32
	DefaultAnchorOffset = 4
	DefaultGap          = 30
	DefaultRadius       = 10
)

// Point is a position in chart space. Y grows downward.
type Point struct {
	X, Y float64
}

// Layout maps days and rows to chart coordinates.
type Layout struct {
	DayWidth  float64
	RowHeight float64
	BarHeight float64
	// AnchorOffset separates the Start anchor (above row center) from the
	// End anchor (below row center) so overlapping lines stay distinct.
	AnchorOffset float64
	// Gap is the minimum horizontal clearance before a route may turn.
	Gap float64
	// Radius rounds each bend.
	Radius float64
	// ViewStart is the day drawn at x = 0.
	ViewStart time.Time
}

// DefaultLayout returns the standard geometry anchored at viewStart.
func DefaultLayout(viewStart time.Time) Layout {
	return Layout{
		DayWidth:     DefaultDayWidth,
		RowHeight:    DefaultRowHeight,
		BarHeight:    DefaultBarHeight,
		AnchorOffset: DefaultAnchorOffset,
		Gap:          DefaultGap,
		Radius:       DefaultRadius,
		ViewStart:    calendar.Day(viewStart),
	}
}

// XForDate returns the left edge of day d.
func (l Layout) XForDate(d time.Time) float64 {
	return float64(calendar.DaysBetween(l.ViewStart, d)) * l.DayWidth
}

// DateAt converts a pixel offset into the day it falls on.
func (l Layout) DateAt(x float64) time.Time {
	return calendar.AddDays(l.ViewStart, int(math.Floor(x/l.DayWidth)))
}

// DaysForWidth converts a bar width into a whole number of days, at least one.
func (l Layout) DaysForWidth(w float64) int {
	days := int(math.Round(w / l.DayWidth))
	if days < 1 {
		return 1
	}
	return days
}

// BarX returns the left edge of t's bar.
func (l Layout) BarX(t domain.Task) float64 {
	return l.XForDate(t.Start)
}

// BarWidth returns the pixel width of t's bar.
func (l Layout) BarWidth(t domain.Task) float64 {
	return float64(t.Duration()) * l.DayWidth
}

// RowTop returns the top edge of the bar drawn in row.
func (l Layout) RowTop(row int) float64 {
	return float64(row) * l.RowHeight
}

// RowCenter returns the vertical center of the bar drawn in row.
func (l Layout) RowCenter(row int) float64 {
	return l.RowTop(row) + l.BarHeight/2
}

// Anchor is the attachment point of a task endpoint.
type Anchor struct {
	TaskID   string
	Endpoint domain.EndpointKind
	Point
}

// AnchorFor places the anchor of endpoint on t drawn in row.
func (l Layout) AnchorFor(t domain.Task, row int, endpoint domain.EndpointKind) Anchor {
	a := Anchor{TaskID: t.ID, Endpoint: endpoint}
	center := l.RowCenter(row)
	if endpoint == domain.EndpointEnd {
		a.X = l.BarX(t) + l.BarWidth(t)
		a.Y = center + l.AnchorOffset
		return a
	}
	a.X = l.BarX(t)
	a.Y = center - l.AnchorOffset
	return a
}

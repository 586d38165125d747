// Package render draws a board outside the interactive editor: a standalone
// SVG document for export and a plain-text timeline for terminals.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
)

// Chart margins and decorations, in pixels.
const (
	MarginLeft   = 160
	MarginRight  = 40
	HeaderHeight = 40
	ArrowSize    = 8
	AnchorRadius = 3
	FontFamily   = "Helvetica, Arial, sans-serif"
	FontSize     = 12
)

const (
	colorBackground = "#ffffff"
	colorGrid       = "#eeeeee"
	colorText       = "#333333"
	colorProgress   = "#00000033"
)

// StatusFill returns the bar fill used for a status.
func StatusFill(s domain.TaskStatus) string {
	switch s {
	case domain.StatusNotStarted:
		return "#b0bec5"
	case domain.StatusInProgress:
		return "#64b5f6"
	case domain.StatusDone:
		return "#81c784"
	default:
		return "#cfd8dc"
	}
}

// SVG renders tasks as bars in row order with every dependency routed
// between its anchors. Chart coordinates come straight from layout; the
// chart body is shifted by the left margin and the header height.
func SVG(tasks []domain.Task, deps []domain.Dependency, layout route.Layout) string {
	days := visibleDays(tasks, layout)
	bodyWidth := float64(days) * layout.DayWidth
	bodyHeight := float64(len(tasks)) * layout.RowHeight
	width := MarginLeft + bodyWidth + MarginRight
	height := HeaderHeight + bodyHeight

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.title-text { font-family: %s; font-size: %dpx; fill: %s; }
.day-text { font-family: %s; font-size: %dpx; fill: %s; }
</style>
</defs>
`, num(width), num(height), colorBackground,
		FontFamily, FontSize, colorText,
		FontFamily, FontSize-2, colorText))

	drawHeader(&svg, layout, days)
	drawTitles(&svg, tasks, layout)

	svg.WriteString(fmt.Sprintf(`<g transform="translate(%d,%d)">`+"\n", MarginLeft, HeaderHeight))
	drawGrid(&svg, layout, days, bodyHeight)
	for i, t := range tasks {
		drawBar(&svg, t, i, layout)
	}
	for _, g := range layout.RouteAll(tasks, deps) {
		drawRoute(&svg, g.Path)
	}
	svg.WriteString("</g>\n")

	svg.WriteString("</svg>")
	return svg.String()
}

// visibleDays spans from the view start through the latest task end, at
// least one day.
func visibleDays(tasks []domain.Task, layout route.Layout) int {
	days := 1
	for _, t := range tasks {
		if n := calendar.DaysBetween(layout.ViewStart, t.End) + 1; n > days {
			days = n
		}
	}
	return days
}

func drawHeader(svg *strings.Builder, layout route.Layout, days int) {
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="title-text">%s</text>`+"\n",
		8, HeaderHeight/2, escapeXML(calendar.FormatMonth(layout.ViewStart))))
	for d := 0; d < days; d++ {
		day := calendar.AddDays(layout.ViewStart, d)
		x := MarginLeft + (float64(d)+0.5)*layout.DayWidth
		svg.WriteString(fmt.Sprintf(`<text x="%s" y="%d" text-anchor="middle" class="day-text">%02d</text>`+"\n",
			num(x), HeaderHeight-8, day.Day()))
	}
}

func drawTitles(svg *strings.Builder, tasks []domain.Task, layout route.Layout) {
	for i, t := range tasks {
		y := HeaderHeight + layout.RowCenter(i)
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%s" dominant-baseline="middle" class="title-text">%s</text>`+"\n",
			8, num(y), escapeXML(t.Title)))
	}
}

func drawGrid(svg *strings.Builder, layout route.Layout, days int, height float64) {
	for d := 0; d <= days; d++ {
		x := float64(d) * layout.DayWidth
		svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			num(x), num(x), num(height), colorGrid))
	}
}

func drawBar(svg *strings.Builder, t domain.Task, row int, layout route.Layout) {
	x := layout.BarX(t)
	w := layout.BarWidth(t)
	y := layout.RowTop(row)
	svg.WriteString(fmt.Sprintf(`<rect id="task-%s" x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s"/>`+"\n",
		escapeXML(t.ID), num(x), num(y), num(w), num(layout.BarHeight), StatusFill(t.Status)))
	if t.Progress > 0 {
		pw := w * float64(min(t.Progress, 100)) / 100
		svg.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s"/>`+"\n",
			num(x), num(y), num(pw), num(layout.BarHeight), colorProgress))
	}
	for _, ep := range []domain.EndpointKind{domain.EndpointStart, domain.EndpointEnd} {
		a := layout.AnchorFor(t, row, ep)
		svg.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%d" fill="%s"/>`+"\n",
			num(a.X), num(a.Y), AnchorRadius, colorText))
	}
}

func drawRoute(svg *strings.Builder, p route.Path) {
	dash := ""
	if p.Dashed {
		dash = ` stroke-dasharray="4 4"`
	}
	svg.WriteString(fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="2" fill="none"%s/>`+"\n",
		p.D(), p.Color, dash))
	if p.Arrow == nil {
		return
	}
	pts := p.Arrow.Polygon(ArrowSize)
	svg.WriteString(fmt.Sprintf(`<polygon points="%s,%s %s,%s %s,%s" fill="%s"/>`+"\n",
		num(pts[0].X), num(pts[0].Y), num(pts[1].X), num(pts[1].Y), num(pts[2].X), num(pts[2].Y), p.Color))
}

// escapeXML escapes the characters that would break an attribute or text
// node.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

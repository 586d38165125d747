package route

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttline/internal/domain"
)

// SegmentKind distinguishes straight runs from rounded bends.
type SegmentKind int

const (
	SegmentLine SegmentKind = iota
	SegmentQuad
)

// Segment continues a path from the previous point to To. Quad segments bend
// around Ctrl.
type Segment struct {
	Kind SegmentKind
	Ctrl Point
	To   Point
}

// Arrow is the arrowhead drawn at the end of a committed route. Heading is
// +1 when the final run travels right and -1 when it travels left.
type Arrow struct {
	Tip     Point
	Heading float64
}

// Polygon returns the three corners of an arrowhead of the given size.
func (a Arrow) Polygon(size float64) [3]Point {
	back := a.Tip.X - a.Heading*size
	return [3]Point{
		a.Tip,
		{X: back, Y: a.Tip.Y - size/2},
		{X: back, Y: a.Tip.Y + size/2},
	}
}

// Path is a routed dependency line.
type Path struct {
	Kind  domain.RelationKind
	Start Point

	// Corners holds the source, both bend points and the target of the
	// unrounded route.
	Corners  []Point
	Segments []Segment
	MidX     float64
	Arrow    *Arrow
	Color    string
	Dashed   bool
}

// End returns the last point of the path.
func (p Path) End() Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].To
}

// D renders the path as SVG path data.
func (p Path) D() string {
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, p.Start)
	for _, s := range p.Segments {
		switch s.Kind {
		case SegmentQuad:
			b.WriteString(" Q ")
			writePoint(&b, s.Ctrl)
			b.WriteString(" ")
			writePoint(&b, s.To)
		default:
			b.WriteString(" L ")
			writePoint(&b, s.To)
		}
	}
	return b.String()
}

// Length is the length of the unrounded route.
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p.Corners); i++ {
		total += math.Abs(p.Corners[i].X-p.Corners[i-1].X) + math.Abs(p.Corners[i].Y-p.Corners[i-1].Y)
	}
	return total
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(formatCoord(pt.X))
	b.WriteString(" ")
	b.WriteString(formatCoord(pt.Y))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

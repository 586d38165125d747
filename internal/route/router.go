package route

import (
	"math"

	"github.com/alexanderramin/ganttline/internal/domain"
)

// Arrow colors per relation kind, plus the color of a line still being drawn.
const (
	ColorFinishToStart  = "#1e88e5"
	ColorStartToStart   = "#43a047"
	ColorFinishToFinish = "#8e24aa"
	ColorStartToFinish  = "#f4511e"
	ColorPending        = "#ff5722"
	ColorDefault        = "#333333"
)

// ColorFor returns the arrow color of kind.
func ColorFor(kind domain.RelationKind) string {
	switch kind {
	case domain.FinishToStart:
		return ColorFinishToStart
	case domain.StartToStart:
		return ColorStartToStart
	case domain.FinishToFinish:
		return ColorFinishToFinish
	case domain.StartToFinish:
		return ColorStartToFinish
	}
	return ColorDefault
}

// MidX picks the x of the vertical run. It is the outward extreme of the two
// anchors pushed out by gap, on the side each endpoint faces: End anchors
// exit to the right, Start anchors to the left.
//
//	FS  max(x1+gap, x2-gap)
//	SS  min(x1-gap, x2-gap)
//	FF  max(x1+gap, x2+gap)
//	SF  min(x1-gap, x2+gap)
func MidX(x1, x2, gap float64, kind domain.RelationKind) float64 {
	switch kind {
	case domain.FinishToStart:
		return math.Max(x1+gap, x2-gap)
	case domain.StartToStart:
		return math.Min(x1-gap, x2-gap)
	case domain.FinishToFinish:
		return math.Max(x1+gap, x2+gap)
	case domain.StartToFinish:
		return math.Min(x1-gap, x2+gap)
	}
	return (x1 + x2) / 2
}

// Route computes the three-run orthogonal path from one anchor to another:
// horizontal to MidX, vertical to the target row, horizontal into the
// target. Each bend is rounded with the layout radius, shrunk when a run is
// too short to fit it.
func (l Layout) Route(from, to Anchor, kind domain.RelationKind) Path {
	p := l.orthogonal(from.Point, to.Point, kind)
	p.Color = ColorFor(kind)
	heading := 1.0
	if to.X < p.MidX {
		heading = -1
	}
	p.Arrow = &Arrow{Tip: to.Point, Heading: heading}
	return p
}

// Pending routes a line still being drawn from a fixed anchor to the
// pointer. It bends as if the target were the same endpoint kind as the
// source, is dashed, and carries no arrowhead.
func (l Layout) Pending(from Anchor, pointer Point) Path {
	kind := domain.StartToStart
	if from.Endpoint == domain.EndpointEnd {
		kind = domain.FinishToFinish
	}
	p := l.orthogonal(from.Point, pointer, kind)
	p.Color = ColorPending
	p.Dashed = true
	return p
}

func (l Layout) orthogonal(a, b Point, kind domain.RelationKind) Path {
	mid := MidX(a.X, b.X, l.Gap, kind)
	p := Path{
		Kind:  kind,
		Start: a,
		MidX:  mid,
		Corners: []Point{
			a,
			{X: mid, Y: a.Y},
			{X: mid, Y: b.Y},
			b,
		},
	}

	dy := b.Y - a.Y
	if dy == 0 {
		p.Segments = []Segment{
			{Kind: SegmentLine, To: Point{X: mid, Y: a.Y}},
			{Kind: SegmentLine, To: b},
		}
		return p
	}

	dirY := sign(dy)
	dirIn := sign(mid - a.X)
	dirOut := sign(b.X - mid)

	r := l.Radius
	r = math.Min(r, math.Abs(mid-a.X)/2)
	r = math.Min(r, math.Abs(dy)/2)
	if b.X != mid {
		r = math.Min(r, math.Abs(b.X-mid)/2)
	}

	p.Segments = []Segment{
		{Kind: SegmentLine, To: Point{X: mid - dirIn*r, Y: a.Y}},
		{Kind: SegmentQuad, Ctrl: Point{X: mid, Y: a.Y}, To: Point{X: mid, Y: a.Y + dirY*r}},
		{Kind: SegmentLine, To: Point{X: mid, Y: b.Y - dirY*r}},
		{Kind: SegmentQuad, Ctrl: Point{X: mid, Y: b.Y}, To: Point{X: mid + dirOut*r, Y: b.Y}},
		{Kind: SegmentLine, To: b},
	}
	return p
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

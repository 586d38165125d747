package session

import (
	"fmt"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/schedule"
)

// Link is the outcome of creating a dependency: the edge and the correction
// it forced on the successor.
type Link struct {
	Dependency domain.Dependency
	Result     schedule.Result
}

// Anchor returns the current anchor of a task endpoint.
func (c *Controller) Anchor(id string, endpoint domain.EndpointKind) (route.Anchor, bool) {
	row := c.board.IndexOf(id)
	if row < 0 {
		return route.Anchor{}, false
	}
	t, _ := c.board.Get(id)
	return c.layout.AnchorFor(t, row, endpoint), true
}

// BeginDraw starts a dependency line at a task's anchor.
func (c *Controller) BeginDraw(id string, endpoint domain.EndpointKind) error {
	if !endpoint.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidEndpoint, endpoint)
	}
	a, ok := c.Anchor(id, endpoint)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	c.draw = &Draw{From: a, Pointer: a.Point}
	return nil
}

// Drawing reports whether a dependency line is in progress.
func (c *Controller) Drawing() bool { return c.draw != nil }

// CurrentDraw returns the in-progress line, if any.
func (c *Controller) CurrentDraw() (Draw, bool) {
	if c.draw == nil {
		return Draw{}, false
	}
	return *c.draw, true
}

// MovePointer tracks the pointer while drawing. It does nothing otherwise.
func (c *Controller) MovePointer(p route.Point) {
	if c.draw != nil {
		c.draw.Pointer = p
	}
}

// PendingPath is the dashed line from the source anchor to the pointer.
func (c *Controller) PendingPath() (route.Path, bool) {
	if c.draw == nil {
		return route.Path{}, false
	}
	return c.layout.Pending(c.draw.From, c.draw.Pointer), true
}

// CancelDraw abandons the line. Releasing the pointer outside any anchor
// ends up here.
func (c *Controller) CancelDraw() {
	c.draw = nil
}

// CompleteDraw ends the line on a target anchor. Dropping on the source
// task creates nothing and reports ErrSelfDependency. The draw state is
// cleared whatever the outcome.
func (c *Controller) CompleteDraw(targetID string, endpoint domain.EndpointKind) (Link, error) {
	if c.draw == nil {
		return Link{}, domain.ErrNoDrawInProgress
	}
	from := c.draw.From
	c.draw = nil

	if targetID == from.TaskID {
		return Link{}, domain.ErrSelfDependency
	}
	kind, err := domain.RelationFromEndpoints(from.Endpoint, endpoint)
	if err != nil {
		return Link{}, err
	}
	return c.Link(domain.Dependency{PredecessorID: from.TaskID, SuccessorID: targetID, Kind: kind})
}

// Link adds a dependency and immediately enforces it on the successor.
func (c *Controller) Link(d domain.Dependency) (Link, error) {
	if err := c.board.AddDependency(d); err != nil {
		return Link{}, err
	}
	cur, _ := c.board.Interval(d.SuccessorID)
	res, err := c.engine.Commit(c.board, d.SuccessorID, cur)
	if err != nil {
		return Link{}, err
	}
	return Link{Dependency: d, Result: res}, nil
}

// Unlink removes a dependency. Dates stay where they are.
func (c *Controller) Unlink(d domain.Dependency) error {
	return c.board.RemoveDependency(d)
}

// Routes returns arrow geometry for every committed edge.
func (c *Controller) Routes() []route.EdgeGeometry {
	return c.layout.RouteAll(c.board.Tasks(), c.board.Dependencies())
}

// RoutesFor returns arrow geometry for the edges that reference id.
func (c *Controller) RoutesFor(id string) []route.EdgeGeometry {
	return route.Touching(c.Routes(), id)
}

// Conflicts lists edges the current dates do not satisfy. With single-hop
// propagation these appear downstream of an edited predecessor.
func (c *Controller) Conflicts() []domain.Dependency {
	var out []domain.Dependency
	for _, d := range c.board.Dependencies() {
		pred, ok := c.board.Interval(d.PredecessorID)
		if !ok {
			continue
		}
		succ, ok := c.board.Interval(d.SuccessorID)
		if !ok {
			continue
		}
		if !schedule.Satisfied(pred, succ, d.Kind) {
			out = append(out, d)
		}
	}
	return out
}

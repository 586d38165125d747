// Package session turns discrete edit gestures into board mutations. A
// Controller owns the board, the constraint engine, the viewed period and
// the transient gesture state (a dependency being drawn, a row being
// dragged). Every method runs to completion before returning, so one edit
// is fully resolved before the next is applied.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/schedule"
	"github.com/alexanderramin/ganttline/internal/store"
	"github.com/google/uuid"
)

// Side selects which edge of a bar a resize gesture grabbed.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Draw is a dependency line being drawn from a fixed anchor.
type Draw struct {
	From    route.Anchor
	Pointer route.Point
}

// Controller is the edit session over one board.
type Controller struct {
	board  *store.Store
	engine *schedule.Engine
	layout route.Layout
	newID  func() string

	draw    *Draw
	dragRow int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLayout overrides the default chart geometry. The view start is always
// reset to the current period.
func WithLayout(l route.Layout) Option {
	return func(c *Controller) {
		c.layout = l
	}
}

// WithIDGenerator replaces uuid-based ids for new tasks.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		c.newID = fn
	}
}

// New creates a controller viewing the month that contains period.
func New(board *store.Store, engine *schedule.Engine, period time.Time, opts ...Option) *Controller {
	c := &Controller{
		board:   board,
		engine:  engine,
		layout:  route.DefaultLayout(period),
		newID:   func() string { return uuid.New().String() },
		dragRow: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.layout.ViewStart = calendar.StartOfMonth(period)
	return c
}

// Board exposes the underlying store for reads.
func (c *Controller) Board() *store.Store { return c.board }

// Layout returns the geometry for the current period.
func (c *Controller) Layout() route.Layout { return c.layout }

// Tasks returns the board's tasks in display order.
func (c *Controller) Tasks() []domain.Task { return c.board.Tasks() }

// ── Period navigation ───────────────────────────────────────────────────────

// Period returns the first day of the viewed month.
func (c *Controller) Period() time.Time { return c.layout.ViewStart }

// SetPeriod switches the view to the month containing d.
func (c *Controller) SetPeriod(d time.Time) {
	c.layout.ViewStart = calendar.StartOfMonth(d)
}

// NextPeriod moves the view one month forward.
func (c *Controller) NextPeriod() {
	c.layout.ViewStart = calendar.AddMonths(c.layout.ViewStart, 1)
}

// PrevPeriod moves the view one month back.
func (c *Controller) PrevPeriod() {
	c.layout.ViewStart = calendar.AddMonths(c.layout.ViewStart, -1)
}

// ── Task creation and attributes ────────────────────────────────────────────

// AddTask appends a new single-day task at the start of the viewed period.
// A blank title is a no-op reported as ErrEmptyTitle.
func (c *Controller) AddTask(title, member string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	start := c.Period()
	t := domain.Task{
		ID:     c.newID(),
		Title:  title,
		Member: strings.TrimSpace(member),
		Status: domain.StatusNew,
		Impact: domain.ImpactMedium,
		Start:  start,
		End:    start,
	}
	if err := c.board.Append(t); err != nil {
		return domain.Task{}, fmt.Errorf("adding task: %w", err)
	}
	return t, nil
}

// Update edits the descriptive fields of a task. Dates and edges cannot be
// changed this way.
func (c *Controller) Update(id string, fn func(t *domain.Task)) error {
	return c.board.Update(id, fn)
}

// ── Interval edits ──────────────────────────────────────────────────────────

// EditInterval proposes new dates for id, repairs an inverted range, runs the
// constraint engine and commits the result.
func (c *Controller) EditInterval(id string, start, end time.Time) (schedule.Result, error) {
	return c.engine.Commit(c.board, id, domain.NewInterval(start, end).Normalize())
}

// PickStart moves the task to begin on day, keeping its duration.
func (c *Controller) PickStart(id string, day time.Time) (schedule.Result, error) {
	t, ok := c.board.Get(id)
	if !ok {
		return schedule.Result{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	iv := t.Interval().WithStart(day)
	return c.EditInterval(id, iv.Start, iv.End)
}

// PickEnd sets the last day of the task, keeping its start.
func (c *Controller) PickEnd(id string, day time.Time) (schedule.Result, error) {
	t, ok := c.board.Get(id)
	if !ok {
		return schedule.Result{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return c.EditInterval(id, t.Start, day)
}

// DragBar drops a bar whose left edge landed at pixel x.
func (c *Controller) DragBar(id string, x float64) (schedule.Result, error) {
	return c.PickStart(id, c.layout.DateAt(x))
}

// ResizeBar applies a resize gesture. width is the new bar width; for a left
// resize x is the new left edge.
func (c *Controller) ResizeBar(id string, side Side, x, width float64) (schedule.Result, error) {
	t, ok := c.board.Get(id)
	if !ok {
		return schedule.Result{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	days := c.layout.DaysForWidth(width)
	start := t.Start
	if side == SideLeft {
		start = c.layout.DateAt(x)
	}
	return c.EditInterval(id, start, calendar.AddDays(start, days-1))
}

// Shift moves a task by n days, keeping its duration.
func (c *Controller) Shift(id string, n int) (schedule.Result, error) {
	t, ok := c.board.Get(id)
	if !ok {
		return schedule.Result{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return c.EditInterval(id, calendar.AddDays(t.Start, n), calendar.AddDays(t.End, n))
}

// Stretch moves the end of a task by n days. The result never drops below
// one day.
func (c *Controller) Stretch(id string, n int) (schedule.Result, error) {
	t, ok := c.board.Get(id)
	if !ok {
		return schedule.Result{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	end := calendar.AddDays(t.End, n)
	if calendar.Before(end, t.Start) {
		end = t.Start
	}
	return c.EditInterval(id, t.Start, end)
}

// ── Row reorder ─────────────────────────────────────────────────────────────

// Reorder moves a row. Dates and dependencies are untouched.
func (c *Controller) Reorder(from, to int) error {
	return c.board.Reorder(from, to)
}

// BeginRowDrag records the row a drag started on.
func (c *Controller) BeginRowDrag(index int) error {
	if index < 0 || index >= c.board.Len() {
		return fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	c.dragRow = index
	return nil
}

// DropRow completes a row drag onto index.
func (c *Controller) DropRow(index int) error {
	from := c.dragRow
	c.dragRow = -1
	if from < 0 {
		return nil
	}
	return c.board.Reorder(from, index)
}

// DraggingRow returns the row being dragged, or -1.
func (c *Controller) DraggingRow() int { return c.dragRow }

package session

import (
	"testing"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/schedule"
	"github.com/alexanderramin/ganttline/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) domain.Interval {
	d, err := calendar.ParseKey(s)
	if err != nil {
		panic(err)
	}
	return domain.Interval{Start: d, End: d}
}

func span(start, end string) domain.Interval {
	return domain.NewInterval(day(start).Start, day(end).Start)
}

// newController builds a three-row board viewed in January 2026:
//
//	a 01-01..01-05
//	b 01-06..01-07  FS after a
//	c 01-10..01-10
func newController(t *testing.T, policy schedule.Policy) *Controller {
	t.Helper()
	mk := func(id string, iv domain.Interval, deps ...domain.Dependency) domain.Task {
		return domain.Task{ID: id, Title: "Task " + id, Start: iv.Start, End: iv.End, DependsOn: deps}
	}
	b, err := store.New([]domain.Task{
		mk("a", span("2026-01-01", "2026-01-05")),
		mk("b", span("2026-01-06", "2026-01-07"), domain.Dependency{PredecessorID: "a", Kind: domain.FinishToStart}),
		mk("c", span("2026-01-10", "2026-01-10")),
	})
	require.NoError(t, err)
	ids := 0
	return New(b, schedule.NewEngine(policy), day("2026-01-15").Start, WithIDGenerator(func() string {
		ids++
		return "new-" + string(rune('0'+ids))
	}))
}

func interval(t *testing.T, c *Controller, id string) domain.Interval {
	t.Helper()
	iv, ok := c.Board().Interval(id)
	require.True(t, ok, "task %s missing", id)
	return iv
}

func TestNew_ViewsMonthOfPeriod(t *testing.T) {
	c := newController(t, schedule.Policy{})
	assert.Equal(t, calendar.Date(2026, 1, 1), c.Period())
	assert.Equal(t, c.Period(), c.Layout().ViewStart)
}

func TestPeriodNavigation(t *testing.T) {
	c := newController(t, schedule.Policy{})

	c.NextPeriod()
	assert.Equal(t, calendar.Date(2026, 2, 1), c.Period())

	c.PrevPeriod()
	c.PrevPeriod()
	assert.Equal(t, calendar.Date(2025, 12, 1), c.Period())
	assert.Equal(t, c.Period(), c.Layout().ViewStart)

	c.SetPeriod(calendar.Date(2027, 3, 19))
	assert.Equal(t, calendar.Date(2027, 3, 1), c.Period())
}

func TestAddTask(t *testing.T) {
	c := newController(t, schedule.Policy{})

	task, err := c.AddTask("  Write docs ", "ana")
	require.NoError(t, err)

	assert.Equal(t, "new-1", task.ID)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, domain.StatusNew, task.Status)
	assert.Equal(t, domain.ImpactMedium, task.Impact)
	assert.Equal(t, span("2026-01-01", "2026-01-01"), task.Interval())
	assert.Equal(t, 3, c.Board().IndexOf("new-1"))
}

func TestAddTask_BlankTitleIsNoOp(t *testing.T) {
	c := newController(t, schedule.Policy{})

	_, err := c.AddTask("   ", "")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Equal(t, 3, c.Board().Len())
}

func TestDragBar_KeepsDurationAndLeavesDownstream(t *testing.T) {
	c := newController(t, schedule.Policy{})

	// x=125 falls on the third day of the view.
	res, err := c.DragBar("a", 125)
	require.NoError(t, err)

	assert.Equal(t, span("2026-01-03", "2026-01-07"), res.Edited())
	assert.Equal(t, span("2026-01-06", "2026-01-07"), interval(t, c, "b"), "single-hop edit must not move b")
	assert.Equal(t, []domain.Dependency{{PredecessorID: "a", SuccessorID: "b", Kind: domain.FinishToStart}}, c.Conflicts())
}

func TestDragBar_TransitivePolicyMovesDownstream(t *testing.T) {
	c := newController(t, schedule.Policy{PropagateTransitively: true})

	res, err := c.DragBar("a", 125)
	require.NoError(t, err)

	assert.Len(t, res.Moved(), 2)
	assert.Equal(t, span("2026-01-08", "2026-01-09"), interval(t, c, "b"))
	assert.Empty(t, c.Conflicts())
}

func TestDragBar_CorrectedAgainstPredecessor(t *testing.T) {
	c := newController(t, schedule.Policy{})

	res, err := c.DragBar("b", 0)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-06", "2026-01-07"), res.Edited())
}

func TestResizeBar(t *testing.T) {
	c := newController(t, schedule.Policy{})

	_, err := c.ResizeBar("b", SideRight, 0, 170)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-06", "2026-01-08"), interval(t, c, "b"))

	// Left edge pulled before a finishes: FS pushes the one-day bar back.
	_, err = c.ResizeBar("b", SideLeft, 240, 10)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-06", "2026-01-06"), interval(t, c, "b"))
}

func TestPickStartAndEnd(t *testing.T) {
	c := newController(t, schedule.Policy{})

	_, err := c.PickStart("c", day("2026-01-20").Start)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-20", "2026-01-20"), interval(t, c, "c"))

	_, err = c.PickEnd("a", day("2025-12-20").Start)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-01", "2026-01-01"), interval(t, c, "a"), "inverted range collapses to one day")
}

func TestShiftAndStretch(t *testing.T) {
	c := newController(t, schedule.Policy{})

	_, err := c.Shift("a", 2)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-03", "2026-01-07"), interval(t, c, "a"))

	_, err = c.Stretch("c", -5)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-10", "2026-01-10"), interval(t, c, "c"))

	_, err = c.Stretch("c", 2)
	require.NoError(t, err)
	assert.Equal(t, span("2026-01-10", "2026-01-12"), interval(t, c, "c"))
}

func TestEdits_UnknownTask(t *testing.T) {
	c := newController(t, schedule.Policy{})

	_, err := c.DragBar("zzz", 10)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = c.ResizeBar("zzz", SideRight, 0, 60)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = c.EditInterval("zzz", day("2026-01-01").Start, day("2026-01-02").Start)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestRowDrag(t *testing.T) {
	c := newController(t, schedule.Policy{})
	before := c.Board().Dependencies()

	require.NoError(t, c.BeginRowDrag(0))
	assert.Equal(t, 0, c.DraggingRow())
	require.NoError(t, c.DropRow(2))

	assert.Equal(t, []string{"b", "c", "a"}, c.Board().IDs())
	assert.Equal(t, -1, c.DraggingRow())
	assert.Equal(t, before, c.Board().Dependencies())
	assert.Equal(t, span("2026-01-01", "2026-01-05"), interval(t, c, "a"))

	assert.ErrorIs(t, c.BeginRowDrag(7), domain.ErrIndexOutOfRange)
	assert.NoError(t, c.DropRow(1), "drop without a drag is ignored")
	assert.Equal(t, []string{"b", "c", "a"}, c.Board().IDs())
}

func TestUpdate_DescriptiveFieldsOnly(t *testing.T) {
	c := newController(t, schedule.Policy{})

	require.NoError(t, c.Update("c", func(t *domain.Task) {
		t.Status = domain.StatusDone
		t.Progress = 100
	}))
	got, _ := c.Board().Get("c")
	assert.Equal(t, domain.StatusDone, got.Status)
	assert.Equal(t, 100, got.Progress)
}

func TestRoutes_FollowBoard(t *testing.T) {
	c := newController(t, schedule.Policy{})

	routes := c.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, route.Point{X: 300, Y: 20}, routes[0].From.Point)
	assert.Equal(t, route.Point{X: 300, Y: 60}, routes[0].To.Point)
	assert.Equal(t, route.ColorFinishToStart, routes[0].Path.Color)

	assert.Len(t, c.RoutesFor("b"), 1)
	assert.Empty(t, c.RoutesFor("c"))

	c.NextPeriod()
	moved := c.Routes()
	require.Len(t, moved, 1)
	assert.Less(t, moved[0].From.X, 0.0, "anchors shift with the viewed period")
}

package domain

import (
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
)

// Task is a single row of the chart. Start and End are inclusive calendar
// days. DependsOn lists the edges directed into this task, in the order they
// were created; the board derives it from its edge list.
type Task struct {
	ID       string
	Title    string
	Member   string
	Status   TaskStatus
	Impact   Impact
	Progress int

	Start time.Time
	End   time.Time

	DependsOn []Dependency
}

// Interval returns the task's scheduled range.
func (t *Task) Interval() Interval {
	return Interval{Start: t.Start, End: t.End}
}

// SetInterval overwrites the task's scheduled range.
func (t *Task) SetInterval(iv Interval) {
	t.Start = iv.Start
	t.End = iv.End
}

// Duration is the inclusive day count of the task, at least one.
func (t *Task) Duration() int {
	return calendar.Duration(t.Start, t.End)
}

// Clone returns a deep copy so callers can hand out tasks without exposing
// the board's DependsOn backing array.
func (t Task) Clone() Task {
	if t.DependsOn != nil {
		t.DependsOn = append([]Dependency(nil), t.DependsOn...)
	}
	return t
}

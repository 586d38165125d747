package schedule

import (
	"fmt"

	"github.com/alexanderramin/ganttline/internal/domain"
)

// Policy controls how far an edit reaches.
type Policy struct {
	// PropagateTransitively re-applies constraints to every downstream task
	// after the edited one is committed. When false only the edited task's
	// own edges are enforced.
	PropagateTransitively bool
}

// Board is the part of the task store the engine reads and writes.
type Board interface {
	Interval(id string) (domain.Interval, bool)
	Predecessors(id string) []domain.Dependency
	DependentsOf(id string) []string
	Replace(id string, iv domain.Interval) error
}

// Change records one task whose interval was committed.
type Change struct {
	TaskID string
	Before domain.Interval
	After  domain.Interval
}

// Moved reports whether the commit altered the task's dates.
func (c Change) Moved() bool {
	return !c.Before.Equal(c.After)
}

// Result is the outcome of one committed edit. Changes[0] is always the
// edited task; downstream tasks follow in propagation order.
type Result struct {
	Changes []Change
}

// Edited returns the committed interval of the edited task.
func (r Result) Edited() domain.Interval {
	if len(r.Changes) == 0 {
		return domain.Interval{}
	}
	return r.Changes[0].After
}

// Moved returns the changes that actually shifted dates.
func (r Result) Moved() []Change {
	var out []Change
	for _, c := range r.Changes {
		if c.Moved() {
			out = append(out, c)
		}
	}
	return out
}

// Engine applies edits to a board under a policy.
type Engine struct {
	Policy Policy
}

// NewEngine returns an engine with the given policy.
func NewEngine(p Policy) *Engine {
	return &Engine{Policy: p}
}

// Correct computes the corrected interval for id without committing it.
func (e *Engine) Correct(b Board, id string, proposed domain.Interval) domain.Interval {
	return ApplyEdit(proposed, b.Predecessors(id), b.Interval)
}

// Commit corrects the proposal for id, writes it to the board, and, when the
// policy asks for it, walks downstream tasks in topological order applying
// the same rules with each task's current interval as its proposal.
func (e *Engine) Commit(b Board, id string, proposed domain.Interval) (Result, error) {
	before, ok := b.Interval(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}

	after := e.Correct(b, id, proposed)
	if err := b.Replace(id, after); err != nil {
		return Result{}, fmt.Errorf("committing %s: %w", id, err)
	}
	res := Result{Changes: []Change{{TaskID: id, Before: before, After: after}}}

	if !e.Policy.PropagateTransitively {
		return res, nil
	}

	for _, dep := range b.DependentsOf(id) {
		cur, ok := b.Interval(dep)
		if !ok {
			continue
		}
		next := e.Correct(b, dep, cur)
		if next.Equal(cur) {
			continue
		}
		if err := b.Replace(dep, next); err != nil {
			return res, fmt.Errorf("propagating to %s: %w", dep, err)
		}
		res.Changes = append(res.Changes, Change{TaskID: dep, Before: cur, After: next})
	}
	return res, nil
}

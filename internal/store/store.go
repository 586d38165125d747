// Package store owns the ordered task sequence and the dependency edges of a
// board. Tasks live in an arena keyed by id; the edge list is the only record
// of dependencies and every task's DependsOn is derived from it on read.
package store

import (
	"fmt"

	"github.com/alexanderramin/ganttline/internal/domain"
)

// Store is the single owner of board state. It is not safe for concurrent
// use; callers serialize edits the way the event loop does.
type Store struct {
	order []string
	tasks map[string]*domain.Task
	edges []domain.Dependency
}

// New builds a store from an inbound task list. Each task's DependsOn entries
// become edges with the task as successor. Self-edges and exact duplicates
// are dropped; predecessors that do not exist are kept so the engine can skip
// them. Inbound edges are not checked for cycles.
func New(tasks []domain.Task) (*Store, error) {
	s := &Store{tasks: make(map[string]*domain.Task, len(tasks))}
	for _, t := range tasks {
		if err := s.insert(t); err != nil {
			return nil, err
		}
	}
	for _, t := range tasks {
		for _, d := range t.DependsOn {
			d.SuccessorID = t.ID
			if d.PredecessorID == t.ID || s.hasEdge(d) {
				continue
			}
			if !d.Kind.Valid() {
				return nil, fmt.Errorf("task %s: %w: %q", t.ID, domain.ErrInvalidRelation, d.Kind)
			}
			s.edges = append(s.edges, d)
		}
	}
	return s, nil
}

func (s *Store) insert(t domain.Task) error {
	if t.ID == "" {
		return fmt.Errorf("task %q has no id", t.Title)
	}
	if _, exists := s.tasks[t.ID]; exists {
		return fmt.Errorf("duplicate task id %s", t.ID)
	}
	rec := t.Clone()
	rec.DependsOn = nil
	rec.SetInterval(rec.Interval().Normalize())
	s.tasks[t.ID] = &rec
	s.order = append(s.order, t.ID)
	return nil
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.order) }

// IDs returns task ids in display order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.order...)
}

// IndexOf returns the row index of id, or -1.
func (s *Store) IndexOf(id string) int {
	for i, tid := range s.order {
		if tid == id {
			return i
		}
	}
	return -1
}

// Get returns a copy of the task with its DependsOn view filled in.
func (s *Store) Get(id string) (domain.Task, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	out := t.Clone()
	out.DependsOn = s.Predecessors(id)
	return out, true
}

// At returns the task displayed at row index i.
func (s *Store) At(i int) (domain.Task, bool) {
	if i < 0 || i >= len(s.order) {
		return domain.Task{}, false
	}
	return s.Get(s.order[i])
}

// Interval returns the live scheduled range of id.
func (s *Store) Interval(id string) (domain.Interval, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return domain.Interval{}, false
	}
	return t.Interval(), true
}

// Tasks returns every task in display order, each carrying its derived
// DependsOn. This is the outbound shape handed back to the host.
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		t, _ := s.Get(id)
		out = append(out, t)
	}
	return out
}

// Append adds a task at the end of the sequence. Any DependsOn entries it
// carries are added through AddDependency.
func (s *Store) Append(t domain.Task) error {
	if err := s.insert(t); err != nil {
		return err
	}
	for _, d := range t.DependsOn {
		d.SuccessorID = t.ID
		if err := s.AddDependency(d); err != nil {
			return err
		}
	}
	return nil
}

// Replace commits a new interval for id. The interval is normalized so the
// stored task always spans at least one day.
func (s *Store) Replace(id string, iv domain.Interval) error {
	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	t.SetInterval(iv.Normalize())
	return nil
}

// Update overwrites the descriptive attributes of id. Dates and edges are
// left alone.
func (s *Store) Update(id string, fn func(t *domain.Task)) error {
	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	iv := t.Interval()
	fn(t)
	t.ID = id
	t.DependsOn = nil
	t.SetInterval(iv)
	return nil
}

// Reorder moves the row at from to index to. It is a pure splice of the
// display sequence.
func (s *Store) Reorder(from, to int) error {
	n := len(s.order)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d with %d rows", domain.ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}
	id := s.order[from]
	s.order = append(s.order[:from], s.order[from+1:]...)
	s.order = append(s.order[:to], append([]string{id}, s.order[to:]...)...)
	return nil
}

package store

import (
	"fmt"

	"github.com/alexanderramin/ganttline/internal/domain"
)

// AddDependency appends an edge. It rejects self-edges, unknown successors,
// exact duplicates and any edge that would close a cycle.
func (s *Store) AddDependency(d domain.Dependency) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, ok := s.tasks[d.SuccessorID]; !ok {
		return fmt.Errorf("%w: successor %s", domain.ErrTaskNotFound, d.SuccessorID)
	}
	if _, ok := s.tasks[d.PredecessorID]; !ok {
		return fmt.Errorf("%w: predecessor %s", domain.ErrTaskNotFound, d.PredecessorID)
	}
	if s.hasEdge(d) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateDependency, d)
	}
	if s.Reaches(d.SuccessorID, d.PredecessorID) {
		return fmt.Errorf("%w: %s", domain.ErrDependencyCycle, d)
	}
	s.edges = append(s.edges, d)
	return nil
}

// RemoveDependency deletes the matching edge.
func (s *Store) RemoveDependency(d domain.Dependency) error {
	for i, e := range s.edges {
		if e == d {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrDependencyNotFound, d)
}

func (s *Store) hasEdge(d domain.Dependency) bool {
	for _, e := range s.edges {
		if e == d {
			return true
		}
	}
	return false
}

// Dependencies returns every edge in creation order.
func (s *Store) Dependencies() []domain.Dependency {
	return append([]domain.Dependency(nil), s.edges...)
}

// Predecessors returns the edges directed into id, in creation order.
func (s *Store) Predecessors(id string) []domain.Dependency {
	var out []domain.Dependency
	for _, e := range s.edges {
		if e.SuccessorID == id {
			out = append(out, e)
		}
	}
	return out
}

// Successors returns the edges leaving id, in creation order.
func (s *Store) Successors(id string) []domain.Dependency {
	var out []domain.Dependency
	for _, e := range s.edges {
		if e.PredecessorID == id {
			out = append(out, e)
		}
	}
	return out
}

// Touching returns every edge that references id on either end.
func (s *Store) Touching(id string) []domain.Dependency {
	var out []domain.Dependency
	for _, e := range s.edges {
		if e.Touches(id) {
			out = append(out, e)
		}
	}
	return out
}

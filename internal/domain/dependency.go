package domain

import "fmt"

// Dependency is a directed edge: Successor may not violate Kind relative to
// Predecessor.
type Dependency struct {
	PredecessorID string
	SuccessorID   string
	Kind          RelationKind
}

// Validate checks the edge in isolation. Self-edges are never allowed.
func (d Dependency) Validate() error {
	if d.PredecessorID == "" || d.SuccessorID == "" {
		return fmt.Errorf("dependency requires both predecessor and successor ids")
	}
	if d.PredecessorID == d.SuccessorID {
		return fmt.Errorf("%w: %s", ErrSelfDependency, d.PredecessorID)
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRelation, d.Kind)
	}
	return nil
}

// Touches reports whether the edge references id on either end.
func (d Dependency) Touches(id string) bool {
	return d.PredecessorID == id || d.SuccessorID == id
}

func (d Dependency) String() string {
	return fmt.Sprintf("%s -%s-> %s", d.PredecessorID, d.Kind, d.SuccessorID)
}

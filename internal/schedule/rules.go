// Package schedule is the dependency-constraint engine. Given a proposed
// interval for an edited task and the edges directed into it, it returns the
// interval that satisfies every edge. Rules are one-sided: they push the
// successor later when it violates a constraint and never pull it earlier
// than what the caller asked for.
package schedule

import (
	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
)

// ApplyRule corrects proposed so it satisfies kind relative to pred. The
// successor's duration is preserved.
//
//	FS  start >= pred.end+1
//	SS  start >= pred.start
//	FF  end   >= pred.end
//	SF  end   >= pred.start
func ApplyRule(pred, proposed domain.Interval, kind domain.RelationKind) domain.Interval {
	proposed = proposed.Normalize()
	pred = pred.Normalize()

	switch kind {
	case domain.FinishToStart:
		earliest := calendar.AddDays(pred.End, 1)
		if calendar.Before(proposed.Start, earliest) {
			return proposed.WithStart(earliest)
		}
	case domain.StartToStart:
		if calendar.Before(proposed.Start, pred.Start) {
			return proposed.WithStart(pred.Start)
		}
	case domain.FinishToFinish:
		if calendar.Before(proposed.End, pred.End) {
			return proposed.WithEnd(pred.End)
		}
	case domain.StartToFinish:
		if calendar.Before(proposed.End, pred.Start) {
			return proposed.WithEnd(pred.Start)
		}
	}
	return proposed
}

// Satisfied reports whether iv already honors kind relative to pred.
func Satisfied(pred, iv domain.Interval, kind domain.RelationKind) bool {
	return ApplyRule(pred, iv, kind).Equal(iv.Normalize())
}

// Lookup resolves a predecessor id to its live interval.
type Lookup func(id string) (domain.Interval, bool)

// ApplyEdit folds every edge into the proposal in edge order. A later edge
// may override an earlier correction; there is no reconciliation pass. Edges
// whose predecessor cannot be resolved are skipped.
func ApplyEdit(proposed domain.Interval, edges []domain.Dependency, lookup Lookup) domain.Interval {
	out := proposed.Normalize()
	for _, e := range edges {
		pred, ok := lookup(e.PredecessorID)
		if !ok {
			continue
		}
		out = ApplyRule(pred, out, e.Kind)
	}
	return out
}

// Violations lists the edges that iv does not satisfy.
func Violations(iv domain.Interval, edges []domain.Dependency, lookup Lookup) []domain.Dependency {
	var out []domain.Dependency
	for _, e := range edges {
		pred, ok := lookup(e.PredecessorID)
		if !ok {
			continue
		}
		if !Satisfied(pred, iv, e.Kind) {
			out = append(out, e)
		}
	}
	return out
}

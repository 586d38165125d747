package route

import "github.com/alexanderramin/ganttline/internal/domain"

// EdgeGeometry pairs a dependency with its routed path.
type EdgeGeometry struct {
	Dependency domain.Dependency
	From       Anchor
	To         Anchor
	Path       Path
}

// RouteAll routes every edge whose two tasks are present in tasks. Row
// positions follow the order of tasks.
func (l Layout) RouteAll(tasks []domain.Task, deps []domain.Dependency) []EdgeGeometry {
	rows := make(map[string]int, len(tasks))
	for i, t := range tasks {
		rows[t.ID] = i
	}

	out := make([]EdgeGeometry, 0, len(deps))
	for _, d := range deps {
		pi, ok := rows[d.PredecessorID]
		if !ok {
			continue
		}
		si, ok := rows[d.SuccessorID]
		if !ok {
			continue
		}
		fromEP, toEP := d.Kind.Endpoints()
		if !fromEP.Valid() {
			continue
		}
		from := l.AnchorFor(tasks[pi], pi, fromEP)
		to := l.AnchorFor(tasks[si], si, toEP)
		out = append(out, EdgeGeometry{
			Dependency: d,
			From:       from,
			To:         to,
			Path:       l.Route(from, to, d.Kind),
		})
	}
	return out
}

// Touching filters geometries to the edges that reference id.
func Touching(geoms []EdgeGeometry, id string) []EdgeGeometry {
	var out []EdgeGeometry
	for _, g := range geoms {
		if g.Dependency.Touches(id) {
			out = append(out, g)
		}
	}
	return out
}

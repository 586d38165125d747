package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
)

// Validate checks a parsed document for semantic errors the schema cannot
// express. All problems are returned, not just the first.
func Validate(doc *Document) []error {
	var errs []error

	ids := make(map[string]bool, len(doc.Tasks))
	for i, t := range doc.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if strings.TrimSpace(t.ID) == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		}
		ids[t.ID] = true

		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.Status != "" && !domain.ValidStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if t.Impact != "" && !domain.ValidImpacts[t.Impact] {
			errs = append(errs, fmt.Errorf("%s.impact: invalid value %q", prefix, t.Impact))
		}
		errs = append(errs, validateDate(prefix+".start", t.Start)...)
		errs = append(errs, validateDate(prefix+".end", t.End)...)

		for j, d := range t.DependsOn {
			dp := fmt.Sprintf("%s.depends_on[%d]", prefix, j)
			if d.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", dp))
			}
			if _, err := domain.ParseRelationKind(d.Type); err != nil {
				errs = append(errs, fmt.Errorf("%s.type: invalid value %q (expected FS, SS, FF or SF)", dp, d.Type))
			}
		}
	}

	errs = append(errs, detectCycles(doc.Tasks)...)
	return errs
}

func validateDate(field, s string) []error {
	if _, err := calendar.ParseKey(s); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)}
	}
	return nil
}

// detectCycles reports dependency loops. Self references and references to
// unknown tasks are ignored here; the board drops or skips them on load.
func detectCycles(tasks []TaskRecord) []error {
	graph := make(map[string][]string)
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}
	for _, t := range tasks {
		for _, d := range t.DependsOn {
			if d.ID == t.ID || !known[d.ID] {
				continue
			}
			graph[d.ID] = append(graph[d.ID], t.ID)
		}
	}

	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, next := range graph[node] {
			if color[next] == gray {
				errs = append(errs, fmt.Errorf("circular dependency detected involving %q and %q", node, next))
				return true
			}
			if color[next] == white && visit(next) {
				return true
			}
		}
		color[node] = black
		return false
	}

	for _, t := range tasks {
		if color[t.ID] == white {
			visit(t.ID)
		}
	}
	return errs
}

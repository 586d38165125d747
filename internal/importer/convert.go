package importer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
)

// Convert turns a validated document into domain tasks. Call Validate first;
// Convert assumes dates and relation codes parse.
func Convert(doc *Document) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(doc.Tasks))
	for i, r := range doc.Tasks {
		start, err := calendar.ParseKey(r.Start)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d].start: %w", i, err)
		}
		end, err := calendar.ParseKey(r.End)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d].end: %w", i, err)
		}

		t := domain.Task{
			ID:     r.ID,
			Title:  r.Title,
			Member: r.Member,
			Status: domain.TaskStatus(r.Status),
			Impact: domain.Impact(r.Impact),
			Start:  start,
			End:    end,
		}
		if t.Status == "" {
			t.Status = domain.StatusNew
		}
		if t.Impact == "" {
			t.Impact = domain.ImpactMedium
		}
		switch {
		case r.Progress != nil:
			t.Progress = *r.Progress
		case r.Porgress != nil:
			t.Progress = *r.Porgress
		}

		for j, d := range r.DependsOn {
			kind, err := domain.ParseRelationKind(d.Type)
			if err != nil {
				return nil, fmt.Errorf("tasks[%d].depends_on[%d]: %w", i, j, err)
			}
			t.DependsOn = append(t.DependsOn, domain.Dependency{
				PredecessorID: d.ID,
				SuccessorID:   r.ID,
				Kind:          kind,
			})
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Decode parses, validates and converts a task list in one step.
func Decode(data []byte) ([]domain.Task, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if errs := Validate(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid task list: %w", errors.Join(errs...))
	}
	return Convert(doc)
}

// Records converts tasks back into file records. Each task's DependsOn is
// written as its predecessor list.
func Records(tasks []domain.Task) []TaskRecord {
	out := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		progress := t.Progress
		r := TaskRecord{
			ID:        t.ID,
			Title:     t.Title,
			Member:    t.Member,
			Status:    string(t.Status),
			Impact:    string(t.Impact),
			Progress:  &progress,
			Start:     calendar.FormatKey(t.Start),
			End:       calendar.FormatKey(t.End),
			DependsOn: []DependencyRecord{},
		}
		for _, d := range t.DependsOn {
			r.DependsOn = append(r.DependsOn, DependencyRecord{ID: d.PredecessorID, Type: string(d.Kind)})
		}
		out = append(out, r)
	}
	return out
}

// Encode writes tasks as an indented JSON array that Decode reads back.
func Encode(tasks []domain.Task) ([]byte, error) {
	data, err := json.MarshalIndent(Records(tasks), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding task list: %w", err)
	}
	return append(data, '\n'), nil
}

package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/store"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

// WithDates sets the interval from two YYYY-MM-DD keys.
func WithDates(start, end string) TaskOption {
	return func(t *domain.Task) {
		t.Start = MustDate(start)
		t.End = MustDate(end)
	}
}

func WithMember(m string) TaskOption {
	return func(t *domain.Task) {
		t.Member = m
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithImpact(i domain.Impact) TaskOption {
	return func(t *domain.Task) {
		t.Impact = i
	}
}

func WithProgress(p int) TaskOption {
	return func(t *domain.Task) {
		t.Progress = p
	}
}

// DependsOn adds a predecessor edge of the given kind.
func DependsOn(predecessorID string, kind domain.RelationKind) TaskOption {
	return func(t *domain.Task) {
		t.DependsOn = append(t.DependsOn, domain.Dependency{
			PredecessorID: predecessorID,
			SuccessorID:   t.ID,
			Kind:          kind,
		})
	}
}

// NewTestTask returns a one-day task starting today. Apply WithID before
// DependsOn so edges carry the final id.
func NewTestTask(title string, opts ...TaskOption) domain.Task {
	today := calendar.Day(time.Now())
	t := domain.Task{
		ID:     uuid.New().String(),
		Title:  title,
		Status: domain.StatusNew,
		Impact: domain.ImpactMedium,
		Start:  today,
		End:    today,
	}
	for _, opt := range opts {
		opt(&t)
	}
	for i := range t.DependsOn {
		t.DependsOn[i].SuccessorID = t.ID
	}
	return t
}

// NewTestBoard builds a store from tasks and fails the test on error.
func NewTestBoard(t *testing.T, tasks ...domain.Task) *store.Store {
	t.Helper()
	b, err := store.New(tasks)
	if err != nil {
		t.Fatalf("failed to build test board: %v", err)
	}
	return b
}

// MustDate parses a YYYY-MM-DD key or panics.
func MustDate(key string) time.Time {
	d, err := calendar.ParseKey(key)
	if err != nil {
		panic(err)
	}
	return d
}

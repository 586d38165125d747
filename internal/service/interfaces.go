package service

import (
	"context"
	"time"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/schedule"
	"github.com/alexanderramin/ganttline/internal/session"
)

// TaskPatch carries optional descriptive edits. Nil fields are left alone.
type TaskPatch struct {
	Title    *string
	Member   *string
	Status   *domain.TaskStatus
	Impact   *domain.Impact
	Progress *int
}

// ImportResult summarizes a replaced board.
type ImportResult struct {
	TaskCount       int
	DependencyCount int
}

// BoardService is the persisted board. Every mutation loads the board, runs
// one session operation and saves the snapshot in a single transaction.
type BoardService interface {
	// Open loads the board into an edit session for interactive use.
	Open(ctx context.Context) (*session.Controller, error)
	// Save persists a session opened with Open.
	Save(ctx context.Context, c *session.Controller) error

	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (domain.Task, error)
	AddTask(ctx context.Context, title, member string) (domain.Task, error)
	// AddScheduledTask adds a task of the given length in days from start, in one
	// transaction. A zero start keeps the default first day.
	AddScheduledTask(ctx context.Context, title, member string, start time.Time, days int) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (domain.Task, error)

	EditInterval(ctx context.Context, id string, start, end time.Time) (schedule.Result, error)
	Move(ctx context.Context, id string, days int) (schedule.Result, error)
	Resize(ctx context.Context, id string, days int) (schedule.Result, error)
	Reorder(ctx context.Context, from, to int) error

	Link(ctx context.Context, d domain.Dependency) (session.Link, error)
	Unlink(ctx context.Context, d domain.Dependency) error
	Dependencies(ctx context.Context) ([]domain.Dependency, error)
	Conflicts(ctx context.Context) ([]domain.Dependency, error)
	Routes(ctx context.Context) ([]route.EdgeGeometry, error)

	Period(ctx context.Context) (time.Time, error)
	SetPeriod(ctx context.Context, d time.Time) error

	Import(ctx context.Context, data []byte) (*ImportResult, error)
	Export(ctx context.Context) ([]byte, error)
}

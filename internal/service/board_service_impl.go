package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/db"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/importer"
	"github.com/alexanderramin/ganttline/internal/repository"
	"github.com/alexanderramin/ganttline/internal/route"
	"github.com/alexanderramin/ganttline/internal/schedule"
	"github.com/alexanderramin/ganttline/internal/session"
	"github.com/alexanderramin/ganttline/internal/store"
)

const periodKey = "period"

type boardService struct {
	uow      db.UnitOfWork
	engine   *schedule.Engine
	layout   route.Layout
	now      func() time.Time
	observer UseCaseObserver
}

func NewBoardService(
	uow db.UnitOfWork,
	engine *schedule.Engine,
	layout route.Layout,
	observers ...UseCaseObserver,
) BoardService {
	return &boardService{
		uow:      uow,
		engine:   engine,
		layout:   layout,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// observe reports one finished use case. Call it deferred with a pointer to
// the named error result.
func (s *boardService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}

// load builds an edit session from the rows visible to tx.
func (s *boardService) load(ctx context.Context, tx db.DBTX) (*session.Controller, error) {
	board, err := repository.NewSQLiteBoardRepo(tx).Load(ctx)
	if err != nil {
		return nil, err
	}
	period := calendar.StartOfMonth(s.now())
	v, ok, err := repository.NewSQLiteMetaRepo(tx).Get(ctx, periodKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if period, err = calendar.ParseKey(v); err != nil {
			return nil, fmt.Errorf("stored period: %w", err)
		}
	}
	return session.New(board, s.engine, period, session.WithLayout(s.layout)), nil
}

func (s *boardService) persist(ctx context.Context, tx db.DBTX, c *session.Controller) error {
	if err := repository.NewSQLiteBoardRepo(tx).Save(ctx, c.Board()); err != nil {
		return err
	}
	return repository.NewSQLiteMetaRepo(tx).Set(ctx, periodKey, calendar.FormatKey(c.Period()))
}

// mutate runs fn against a fresh session and saves the result. Any error
// rolls the whole edit back.
func (s *boardService) mutate(ctx context.Context, fn func(c *session.Controller) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		c, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		return s.persist(ctx, tx, c)
	})
}

func (s *boardService) read(ctx context.Context, fn func(c *session.Controller) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		c, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		return fn(c)
	})
}

func (s *boardService) Open(ctx context.Context) (*session.Controller, error) {
	var c *session.Controller
	err := s.read(ctx, func(loaded *session.Controller) error {
		c = loaded
		return nil
	})
	return c, err
}

func (s *boardService) Save(ctx context.Context, c *session.Controller) (err error) {
	defer s.observe(ctx, "save-board", time.Now(), map[string]any{"tasks": c.Board().Len()}, &err)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.persist(ctx, tx, c)
	})
}

func (s *boardService) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	err := s.read(ctx, func(c *session.Controller) error {
		tasks = c.Tasks()
		return nil
	})
	return tasks, err
}

func (s *boardService) Get(ctx context.Context, id string) (domain.Task, error) {
	var t domain.Task
	err := s.read(ctx, func(c *session.Controller) error {
		var ok bool
		if t, ok = c.Board().Get(id); !ok {
			return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
		}
		return nil
	})
	return t, err
}

func (s *boardService) AddTask(ctx context.Context, title, member string) (t domain.Task, err error) {
	fields := map[string]any{"title": title}
	defer s.observe(ctx, "add-task", time.Now(), fields, &err)

	err = s.mutate(ctx, func(c *session.Controller) error {
		var addErr error
		t, addErr = c.AddTask(title, member)
		return addErr
	})
	fields["task_id"] = t.ID
	return t, err
}

func (s *boardService) AddScheduledTask(ctx context.Context, title, member string, start time.Time, days int) (t domain.Task, err error) {
	days = max(days, 1)
	fields := map[string]any{"title": title, "days": days}
	defer s.observe(ctx, "add-scheduled-task", time.Now(), fields, &err)

	err = s.mutate(ctx, func(c *session.Controller) error {
		added, err := c.AddTask(title, member)
		if err != nil {
			return err
		}
		from := added.Start
		if !start.IsZero() {
			from = start
		}
		res, err := c.EditInterval(added.ID, from, calendar.AddDays(from, days-1))
		if err != nil {
			return err
		}
		added.SetInterval(res.Edited())
		t = added
		return nil
	})
	if err == nil {
		fields["task_id"] = t.ID
		fields["interval"] = t.Interval().String()
	}
	return t, err
}

func (s *boardService) UpdateTask(ctx context.Context, id string, patch TaskPatch) (t domain.Task, err error) {
	defer s.observe(ctx, "update-task", time.Now(), map[string]any{"task_id": id}, &err)

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return domain.Task{}, fmt.Errorf("progress must be between 0 and 100, got %d", *patch.Progress)
	}
	if patch.Status != nil && !domain.ValidStatuses[string(*patch.Status)] {
		return domain.Task{}, fmt.Errorf("invalid status %q", *patch.Status)
	}
	if patch.Impact != nil && !domain.ValidImpacts[string(*patch.Impact)] {
		return domain.Task{}, fmt.Errorf("invalid impact %q", *patch.Impact)
	}

	err = s.mutate(ctx, func(c *session.Controller) error {
		if err := c.Update(id, func(task *domain.Task) {
			if patch.Title != nil {
				task.Title = strings.TrimSpace(*patch.Title)
			}
			if patch.Member != nil {
				task.Member = *patch.Member
			}
			if patch.Status != nil {
				task.Status = *patch.Status
			}
			if patch.Impact != nil {
				task.Impact = *patch.Impact
			}
			if patch.Progress != nil {
				task.Progress = *patch.Progress
			}
		}); err != nil {
			return err
		}
		t, _ = c.Board().Get(id)
		return nil
	})
	return t, err
}

// commit wraps an interval edit with observation and persistence.
func (s *boardService) commit(ctx context.Context, name, id string, fn func(c *session.Controller) (schedule.Result, error)) (res schedule.Result, err error) {
	fields := map[string]any{"task_id": id}
	defer s.observe(ctx, name, time.Now(), fields, &err)

	err = s.mutate(ctx, func(c *session.Controller) error {
		var editErr error
		res, editErr = fn(c)
		return editErr
	})
	if err == nil {
		fields["interval"] = res.Edited().String()
		fields["moved"] = len(res.Moved())
	}
	return res, err
}

func (s *boardService) EditInterval(ctx context.Context, id string, start, end time.Time) (schedule.Result, error) {
	return s.commit(ctx, "edit-interval", id, func(c *session.Controller) (schedule.Result, error) {
		return c.EditInterval(id, start, end)
	})
}

func (s *boardService) Move(ctx context.Context, id string, days int) (schedule.Result, error) {
	return s.commit(ctx, "move-task", id, func(c *session.Controller) (schedule.Result, error) {
		return c.Shift(id, days)
	})
}

func (s *boardService) Resize(ctx context.Context, id string, days int) (schedule.Result, error) {
	return s.commit(ctx, "resize-task", id, func(c *session.Controller) (schedule.Result, error) {
		return c.Stretch(id, days)
	})
}

func (s *boardService) Reorder(ctx context.Context, from, to int) (err error) {
	defer s.observe(ctx, "reorder", time.Now(), map[string]any{"from": from, "to": to}, &err)
	return s.mutate(ctx, func(c *session.Controller) error {
		return c.Reorder(from, to)
	})
}

func (s *boardService) Link(ctx context.Context, d domain.Dependency) (link session.Link, err error) {
	defer s.observe(ctx, "link", time.Now(), map[string]any{"dependency": d.String()}, &err)
	err = s.mutate(ctx, func(c *session.Controller) error {
		var linkErr error
		link, linkErr = c.Link(d)
		return linkErr
	})
	return link, err
}

func (s *boardService) Unlink(ctx context.Context, d domain.Dependency) (err error) {
	defer s.observe(ctx, "unlink", time.Now(), map[string]any{"dependency": d.String()}, &err)
	return s.mutate(ctx, func(c *session.Controller) error {
		return c.Unlink(d)
	})
}

func (s *boardService) Dependencies(ctx context.Context) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	err := s.read(ctx, func(c *session.Controller) error {
		deps = c.Board().Dependencies()
		return nil
	})
	return deps, err
}

func (s *boardService) Conflicts(ctx context.Context) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	err := s.read(ctx, func(c *session.Controller) error {
		deps = c.Conflicts()
		return nil
	})
	return deps, err
}

func (s *boardService) Routes(ctx context.Context) ([]route.EdgeGeometry, error) {
	var routes []route.EdgeGeometry
	err := s.read(ctx, func(c *session.Controller) error {
		routes = c.Routes()
		return nil
	})
	return routes, err
}

func (s *boardService) Period(ctx context.Context) (time.Time, error) {
	var p time.Time
	err := s.read(ctx, func(c *session.Controller) error {
		p = c.Period()
		return nil
	})
	return p, err
}

func (s *boardService) SetPeriod(ctx context.Context, d time.Time) (err error) {
	defer s.observe(ctx, "set-period", time.Now(), map[string]any{"period": calendar.FormatMonth(d)}, &err)
	return s.mutate(ctx, func(c *session.Controller) error {
		c.SetPeriod(d)
		return nil
	})
}

// Import replaces the whole board with the decoded task list.
func (s *boardService) Import(ctx context.Context, data []byte) (result *ImportResult, err error) {
	fields := map[string]any{"bytes": len(data)}
	defer s.observe(ctx, "import", time.Now(), fields, &err)

	tasks, err := importer.Decode(data)
	if err != nil {
		return nil, err
	}
	board, err := store.New(tasks)
	if err != nil {
		return nil, fmt.Errorf("building board: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		period := current.Period()
		if first, ok := board.At(0); ok {
			period = first.Start
		}
		return s.persist(ctx, tx, session.New(board, s.engine, period, session.WithLayout(s.layout)))
	})
	if err != nil {
		return nil, err
	}

	result = &ImportResult{TaskCount: board.Len(), DependencyCount: len(board.Dependencies())}
	fields["task_count"] = result.TaskCount
	fields["dependency_count"] = result.DependencyCount
	return result, nil
}

func (s *boardService) Export(ctx context.Context) ([]byte, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return importer.Encode(tasks)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/ganttline/internal/calendar"
	"github.com/alexanderramin/ganttline/internal/db"
	"github.com/alexanderramin/ganttline/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, title, member, status, impact, progress, start_date, end_date`

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY position, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return t, err
}

// Upsert writes t at the given row position. created_at is kept on update.
func (r *SQLiteTaskRepo) Upsert(ctx context.Context, t *domain.Task, position int) error {
	now := nowUTC()
	query := `INSERT INTO tasks (id, position, title, member, status, impact, progress, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			position = excluded.position,
			title = excluded.title,
			member = excluded.member,
			status = excluded.status,
			impact = excluded.impact,
			progress = excluded.progress,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		position,
		t.Title,
		t.Member,
		string(t.Status),
		string(t.Impact),
		t.Progress,
		calendar.FormatKey(t.Start),
		calendar.FormatKey(t.End),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting task %s: %w", t.ID, err)
	}
	return nil
}

// DeleteExcept removes every task whose id is not in keep.
func (r *SQLiteTaskRepo) DeleteExcept(ctx context.Context, keep []string) error {
	query := `DELETE FROM tasks`
	args := make([]any, 0, len(keep))
	if len(keep) > 0 {
		query += ` WHERE id NOT IN (` + placeholders(len(keep)) + `)`
		for _, id := range keep {
			args = append(args, id)
		}
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting stale tasks: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*domain.Task, error) {
	var (
		t                domain.Task
		status, impact   string
		startStr, endStr string
	)
	if err := s.Scan(&t.ID, &t.Title, &t.Member, &status, &impact, &t.Progress, &startStr, &endStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.Status = domain.TaskStatus(status)
	t.Impact = domain.Impact(impact)

	var err error
	if t.Start, err = parseDate("start_date", startStr); err != nil {
		return nil, err
	}
	if t.End, err = parseDate("end_date", endStr); err != nil {
		return nil, err
	}
	return &t, nil
}

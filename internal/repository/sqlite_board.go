package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ganttline/internal/db"
	"github.com/alexanderramin/ganttline/internal/store"
)

// SQLiteBoardRepo reads and writes a whole board through the task and
// dependency repositories.
type SQLiteBoardRepo struct {
	tasks TaskRepo
	deps  DependencyRepo
}

// NewSQLiteBoardRepo creates a board repository over db, usually a
// transaction from a unit of work.
func NewSQLiteBoardRepo(db db.DBTX) *SQLiteBoardRepo {
	return &SQLiteBoardRepo{
		tasks: NewSQLiteTaskRepo(db),
		deps:  NewSQLiteDependencyRepo(db),
	}
}

// Load rebuilds the board. Each successor gets its stored edges in insertion
// order, which is the order the constraint engine folds them.
func (r *SQLiteBoardRepo) Load(ctx context.Context) (*store.Store, error) {
	tasks, err := r.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	deps, err := r.deps.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(tasks))
	for i, t := range tasks {
		index[t.ID] = i
	}
	for _, d := range deps {
		if i, ok := index[d.SuccessorID]; ok {
			tasks[i].DependsOn = append(tasks[i].DependsOn, d)
		}
	}

	b, err := store.New(tasks)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	return b, nil
}

// Save replaces the stored board with b.
func (r *SQLiteBoardRepo) Save(ctx context.Context, b *store.Store) error {
	if err := r.deps.DeleteAll(ctx); err != nil {
		return err
	}

	tasks := b.Tasks()
	ids := make([]string, 0, len(tasks))
	for i := range tasks {
		if err := r.tasks.Upsert(ctx, &tasks[i], i); err != nil {
			return err
		}
		ids = append(ids, tasks[i].ID)
	}
	if err := r.tasks.DeleteExcept(ctx, ids); err != nil {
		return err
	}

	for seq, d := range b.Dependencies() {
		if err := r.deps.Create(ctx, d, seq); err != nil {
			return err
		}
	}
	return nil
}

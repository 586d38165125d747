package repository

import (
	"context"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/store"
)

type TaskRepo interface {
	// List returns tasks in row order. DependsOn is left empty.
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Upsert(ctx context.Context, t *domain.Task, position int) error
	DeleteExcept(ctx context.Context, keep []string) error
}

type DependencyRepo interface {
	// List returns edges in insertion order.
	List(ctx context.Context) ([]domain.Dependency, error)
	Create(ctx context.Context, d domain.Dependency, seq int) error
	DeleteAll(ctx context.Context) error
}

type MetaRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// BoardRepo stores whole-board snapshots. Save should run inside a unit of
// work so a failed write leaves the previous snapshot intact.
type BoardRepo interface {
	Load(ctx context.Context) (*store.Store, error)
	Save(ctx context.Context, b *store.Store) error
}

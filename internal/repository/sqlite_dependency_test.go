package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depTestSetup stores two tasks for dependency tests.
func depTestSetup(t *testing.T) *SQLiteDependencyRepo {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	tasks := NewSQLiteTaskRepo(database)
	for i, id := range []string{"a", "b"} {
		task := testutil.NewTestTask("Task "+id, testutil.WithID(id))
		require.NoError(t, tasks.Upsert(ctx, &task, i))
	}
	return NewSQLiteDependencyRepo(database)
}

func TestDependencyRepo_CreateAndListInSeqOrder(t *testing.T) {
	repo := depTestSetup(t)
	ctx := context.Background()

	second := domain.Dependency{PredecessorID: "a", SuccessorID: "b", Kind: domain.StartToStart}
	first := domain.Dependency{PredecessorID: "a", SuccessorID: "b", Kind: domain.FinishToStart}
	require.NoError(t, repo.Create(ctx, second, 1))
	require.NoError(t, repo.Create(ctx, first, 0))

	deps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Dependency{first, second}, deps)
}

func TestDependencyRepo_DuplicateRejected(t *testing.T) {
	repo := depTestSetup(t)
	ctx := context.Background()

	d := domain.Dependency{PredecessorID: "a", SuccessorID: "b", Kind: domain.FinishToFinish}
	require.NoError(t, repo.Create(ctx, d, 0))
	assert.Error(t, repo.Create(ctx, d, 1))
}

func TestDependencyRepo_DanglingPredecessorAllowed(t *testing.T) {
	repo := depTestSetup(t)
	ctx := context.Background()

	d := domain.Dependency{PredecessorID: "gone", SuccessorID: "b", Kind: domain.StartToFinish}
	require.NoError(t, repo.Create(ctx, d, 0))

	deps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Dependency{d}, deps)
}

func TestDependencyRepo_DeleteAll(t *testing.T) {
	repo := depTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.Dependency{PredecessorID: "a", SuccessorID: "b", Kind: domain.FinishToStart}, 0))
	require.NoError(t, repo.DeleteAll(ctx))

	deps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, deps)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/ganttline/internal/db"
	"github.com/alexanderramin/ganttline/internal/domain"
	"github.com/alexanderramin/ganttline/internal/store"
	"github.com/alexanderramin/ganttline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_LoadDuringSave checks that readers loading the board
// never fail while another goroutine keeps saving a growing board.
func TestConcurrentAccess_LoadDuringSave(t *testing.T) {
	database := newConcurrentTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	var wg sync.WaitGroup
	writeErrs := make(chan error, 20)

	wg.Add(1)
	go func() {
		defer wg.Done()
		var tasks []domain.Task
		for i := 0; i < 20; i++ {
			opts := []testutil.TaskOption{testutil.WithID(fmt.Sprintf("t%02d", i))}
			if i > 0 {
				opts = append(opts, testutil.DependsOn(tasks[i-1].ID, domain.FinishToStart))
			}
			tasks = append(tasks, testutil.NewTestTask(fmt.Sprintf("Item-%d", i), opts...))

			board, err := store.New(tasks)
			if err != nil {
				writeErrs <- err
				return
			}
			err = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				return NewSQLiteBoardRepo(tx).Save(ctx, board)
			})
			if err != nil {
				writeErrs <- err
			}
		}
	}()

	readErrs := make(chan error, 100)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo := NewSQLiteBoardRepo(database)
			for i := 0; i < 25; i++ {
				if _, err := repo.Load(ctx); err != nil {
					readErrs <- err
					return
				}
			}
		}()
	}

	wg.Wait()
	close(writeErrs)
	close(readErrs)
	for err := range writeErrs {
		t.Errorf("write error: %v", err)
	}
	for err := range readErrs {
		t.Errorf("read error: %v", err)
	}

	final, err := NewSQLiteBoardRepo(database).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, final.Len())
	assert.Len(t, final.Dependencies(), 19)
}

package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/ganttline/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an empty migrated board in memory, closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory board")
	t.Cleanup(func() { database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"tasks", "dependencies", "board_meta"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_tasks_position", "idx_dependencies_successor", "idx_dependencies_seq"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func insertTask(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO tasks (id, position, title, start_date, end_date, created_at, updated_at)
		VALUES (?, 0, 'T', '2026-01-01', '2026-01-02', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`, id)
	require.NoError(t, err)
}

func TestSchema_RejectsSelfDependencyAndBadKind(t *testing.T) {
	db := openTestDB(t)
	insertTask(t, db, "a")

	_, err := db.Exec(`INSERT INTO dependencies (predecessor_id, successor_id, kind, seq) VALUES ('a', 'a', 'FS', 0)`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO dependencies (predecessor_id, successor_id, kind, seq) VALUES ('x', 'a', 'XX', 0)`)
	assert.Error(t, err)
}

func TestSchema_AllowsDanglingPredecessor(t *testing.T) {
	db := openTestDB(t)
	insertTask(t, db, "a")

	_, err := db.Exec(`INSERT INTO dependencies (predecessor_id, successor_id, kind, seq) VALUES ('gone', 'a', 'SS', 0)`)
	assert.NoError(t, err)
}

func TestSchema_CascadesSuccessorDelete(t *testing.T) {
	db := openTestDB(t)
	insertTask(t, db, "a")
	insertTask(t, db, "b")
	_, err := db.Exec(`INSERT INTO dependencies (predecessor_id, successor_id, kind, seq) VALUES ('a', 'b', 'FS', 0)`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM tasks WHERE id = 'b'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM dependencies`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSchema_RejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO tasks (id, position, title, status, start_date, end_date, created_at, updated_at)
		VALUES ('a', 0, 'T', 'Blocked', '2026-01-01', '2026-01-02', 'x', 'x')`)
	assert.Error(t, err)
}

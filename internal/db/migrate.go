package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL,
		member      TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'New'
		            CHECK(status IN ('New','Not Started','In Progress','Done')),
		impact      TEXT NOT NULL DEFAULT 'Medium'
		            CHECK(impact IN ('Low','Medium','High')),
		progress    INTEGER NOT NULL DEFAULT 0
		            CHECK(progress BETWEEN 0 AND 100),
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	// Predecessors are not foreign keys: edges to missing tasks are kept and
	// skipped by the constraint engine.
	`CREATE TABLE IF NOT EXISTS dependencies (
		predecessor_id  TEXT NOT NULL,
		successor_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		kind            TEXT NOT NULL CHECK(kind IN ('FS','SS','FF','SF')),
		seq             INTEGER NOT NULL,
		PRIMARY KEY (predecessor_id, successor_id, kind),
		CHECK(predecessor_id != successor_id)
	)`,

	`CREATE TABLE IF NOT EXISTS board_meta (
		key    TEXT PRIMARY KEY,
		value  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position)`,
	`CREATE INDEX IF NOT EXISTS idx_dependencies_successor ON dependencies(successor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_dependencies_seq ON dependencies(seq)`,
}

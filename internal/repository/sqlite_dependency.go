package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/ganttline/internal/db"
	"github.com/alexanderramin/ganttline/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(db db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: db}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d domain.Dependency, seq int) error {
	query := `INSERT INTO dependencies (predecessor_id, successor_id, kind, seq) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.PredecessorID, d.SuccessorID, string(d.Kind), seq)
	if err != nil {
		return fmt.Errorf("inserting dependency %s: %w", d, err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dependencies`); err != nil {
		return fmt.Errorf("deleting dependencies: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) List(ctx context.Context) ([]domain.Dependency, error) {
	query := `SELECT predecessor_id, successor_id, kind FROM dependencies ORDER BY seq, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

// scanDependencies scans multiple dependency rows from *sql.Rows.
func (r *SQLiteDependencyRepo) scanDependencies(rows *sql.Rows) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	for rows.Next() {
		var (
			d    domain.Dependency
			kind string
		)
		if err := rows.Scan(&d.PredecessorID, &d.SuccessorID, &kind); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		d.Kind = domain.RelationKind(kind)
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}

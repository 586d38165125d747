package db

import (
	"context"
	"database/sql"
)

// DBTX is what the board repositories query through. Inside the service it is
// always the *sql.Tx of the current UnitOfWork; read-only callers and tests
// may pass the *sql.DB directly.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

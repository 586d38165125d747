package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/ganttline/internal/db"
)

// SQLiteMetaRepo stores small board-level settings such as the viewed period.
type SQLiteMetaRepo struct {
	db db.DBTX
}

func NewSQLiteMetaRepo(db db.DBTX) *SQLiteMetaRepo {
	return &SQLiteMetaRepo{db: db}
}

func (r *SQLiteMetaRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM board_meta WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading board_meta %s: %w", key, err)
	}
	return v, true, nil
}

func (r *SQLiteMetaRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO board_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing board_meta %s: %w", key, err)
	}
	return nil
}

package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/ganttline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaRepo_GetSet(t *testing.T) {
	repo := NewSQLiteMetaRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "period")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "period", "2026-01-01"))
	require.NoError(t, repo.Set(ctx, "period", "2026-02-01"))

	v, ok, err := repo.Get(ctx, "period")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2026-02-01", v)
}

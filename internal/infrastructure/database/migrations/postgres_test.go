package migrations_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-manager/internal/infrastructure/database/migrations"
	"book-manager/internal/testutil/pgtest"
)

func tableExists(t *testing.T, pool *pgxpool.Pool, name string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1)`,
		name).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func TestApply_Postgres(t *testing.T) {
	pool := pgtest.NewPool(t)
	ctx := context.Background()

	version, dirty, err := migrations.Status(stdlib.OpenDBFromPool(pool))
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)
	assert.False(t, dirty)

	// Already applied by pgtest; a second run is a no-op.
	require.NoError(t, migrations.Apply(ctx, stdlib.OpenDBFromPool(pool)))

	require.NoError(t, migrations.Rollback(ctx, stdlib.OpenDBFromPool(pool), 1))
	assert.False(t, tableExists(t, pool, "book_authors"))
	assert.True(t, tableExists(t, pool, "books"))

	require.NoError(t, migrations.Apply(ctx, stdlib.OpenDBFromPool(pool)))
	assert.True(t, tableExists(t, pool, "book_authors"))

	assert.Error(t, migrations.Rollback(ctx, stdlib.OpenDBFromPool(pool), 0))
}

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"brickset/client/internal/codec"
	"brickset/client/internal/response"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("BRICKSET_TEST_DATABASE")
	if dsn == "" {
		t.Skip("BRICKSET_TEST_DATABASE not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("postgres not reachable: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

func TestArchiveRepository_Upserts(t *testing.T) {
	pool := newTestPool(t)
	repo := NewArchiveRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	_, err := pool.Exec(ctx, `TRUNCATE sets, minifigs`)
	require.NoError(t, err)

	set := response.Set{SetID: 6876, Number: "6876", NumberVariant: 1, Year: 1986, Theme: codec.Specified("Space")}
	require.NoError(t, repo.SaveSets(ctx, []response.Set{set}))

	set.Name = codec.Specified("Alpha Centauri Outpost")
	require.NoError(t, repo.SaveSets(ctx, []response.Set{set}))

	count, err := repo.CountSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var name string
	require.NoError(t, pool.QueryRow(ctx, `SELECT data->>'name' FROM sets WHERE set_id = 6876`).Scan(&name))
	assert.Equal(t, "Alpha Centauri Outpost", name)

	require.NoError(t, repo.SaveMinifigs(ctx, []response.Minifig{{MinifigNumber: "sp001", OwnedTotal: 2}}))
	require.NoError(t, repo.SaveSets(ctx, nil))
}

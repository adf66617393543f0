package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesSchemaAndRepositories(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "siteproof.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	require.NotNil(t, repos.State)

	// the migrated app_state table is usable straight away
	require.NoError(t, repos.State.Set(ctx, "k", []byte("v")))
	v, err := repos.State.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}

func TestInitDatabase_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "siteproof.db")

	repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos.DB.Close())

	repos2, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, repos2.DB.Close())
}

package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupSQLite(t *testing.T) *SQLStore {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.RunMigrations())
	return store
}

func TestSQLiteStore_Contract(t *testing.T) {
	exerciseStore(t, setupSQLite(t))
}

func TestSQLiteStore_MigrationsAreIdempotent(t *testing.T) {
	store := setupSQLite(t)
	assert.NoError(t, store.RunMigrations())
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/foody.db"
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.RunMigrations())
	require.NoError(t, first.Set(ctx, "foody-cart", `{"state":{"items":{}},"version":0}`))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.RunMigrations())

	value, err := second.Get(ctx, "foody-cart")
	require.NoError(t, err)
	assert.Equal(t, `{"state":{"items":{}},"version":0}`, value)
}

func TestPostgresStore_Contract(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("storefront"),
		postgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	store, err := NewPostgresStore(&Credentials{
		Host:     host,
		Port:     port.Int(),
		User:     "storefront",
		Password: "storefront",
		DBName:   "storefront",
	})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.RunMigrations())
	exerciseStore(t, store)
}

package pg_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/rengifo/usermanager/internal/domain/repository"
	"github.com/rengifo/usermanager/internal/store"
	_ "github.com/rengifo/usermanager/internal/store/adapters/pg"
)

func TestPostgresAdapterRegistered(t *testing.T) {
	adapter, ok := store.GetAdapter("postgres")
	require.True(t, ok)
	require.Equal(t, "postgres", adapter.Name())
}

func TestPostgresAdapterConnectRequiresDSN(t *testing.T) {
	adapter, _ := store.GetAdapter("postgres")
	_, err := adapter.Connect(context.Background(), store.AdapterConfig{})
	require.ErrorIs(t, err, repository.ErrNoDatabase)
}

// Requiere un Postgres real: USERMANAGER_TEST_PG_DSN=postgres://...
func TestPostgresSchemaAndNoDedup(t *testing.T) {
	dsn := os.Getenv("USERMANAGER_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("USERMANAGER_TEST_PG_DSN not set")
	}
	ctx := context.Background()

	conn, err := store.Open(ctx, store.AdapterConfig{Name: "postgres", DSN: dsn})
	require.NoError(t, err)
	defer conn.Close()

	mig, ok := conn.(store.MigratableConnection)
	require.True(t, ok)
	require.NoError(t, mig.EnsureSchema(ctx))
	// idempotente
	require.NoError(t, mig.EnsureSchema(ctx))

	lister := conn.Users().(repository.RecordLister)
	before, err := lister.List(ctx)
	require.NoError(t, err)

	email := "dup-" + uuid.NewString() + "@example.com"
	require.NoError(t, conn.Users().SaveToDatabase(ctx, email, "password123"))
	require.NoError(t, conn.Users().SaveToDatabase(ctx, email, "password123"))

	after, err := lister.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+2)
}

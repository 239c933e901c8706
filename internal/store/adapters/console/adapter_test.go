package console_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rengifo/usermanager/internal/store"
	"github.com/rengifo/usermanager/internal/store/adapters/console"
)

func TestConsoleAdapterRegistered(t *testing.T) {
	a, ok := store.GetAdapter("console")
	require.True(t, ok)
	require.Equal(t, "console", a.Name())
}

func TestSaveToDatabasePrintsThreeLines(t *testing.T) {
	var buf bytes.Buffer
	repo := console.NewUserRepository(&buf)

	require.NoError(t, repo.SaveToDatabase(context.Background(), "example@domain.com", "password123"))
	require.Equal(t,
		"Saving user to the database...\nEmail: example@domain.com\nPassword: password123\n",
		buf.String())
}

func TestOpenUsesConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	conn, err := store.Open(context.Background(), store.AdapterConfig{Name: "console", Out: &buf})
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Ping(context.Background()))
	require.NoError(t, conn.Users().SaveToDatabase(context.Background(), "a@b", "12345678"))
	require.Contains(t, buf.String(), "Email: a@b\n")
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := store.Open(context.Background(), store.AdapterConfig{Name: "mongo"})
	require.Error(t, err)
}

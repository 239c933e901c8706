package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rengifo/usermanager/internal/domain/repository"
)

type failingAdapter struct{}

func (failingAdapter) Name() string { return "test-failing" }
func (failingAdapter) Connect(context.Context, AdapterConfig) (Connection, error) {
	return nil, errors.New("boom")
}

func TestRegisterAndOpen(t *testing.T) {
	RegisterAdapter(failingAdapter{})
	require.Contains(t, ListAdapters(), "test-failing")
	require.Panics(t, func() { RegisterAdapter(failingAdapter{}) })

	_, err := Open(context.Background(), AdapterConfig{Name: "test-failing"})
	require.ErrorContains(t, err, "connect test-failing: boom")

	_, err = Open(context.Background(), AdapterConfig{Name: "nope"})
	require.ErrorIs(t, err, repository.ErrUnknownDriver)
}

func TestAdapterConfigDefaults(t *testing.T) {
	var cfg AdapterConfig
	require.NotNil(t, cfg.Output())
	require.Equal(t, uint32(32), cfg.HashParams().KeyLen)
}

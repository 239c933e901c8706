package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rengifo/usermanager/internal/observability/logger"
)

func TestLogUsesContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core))

	Log(ctx, EventUserAdded, logger.Email("a@b"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "user.added", entries[0].Message)
	require.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	require.Equal(t, "user.added", fields["event"])
	require.Equal(t, "a…@b…", fields["email"])
}

package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	require.Equal(t, zapcore.WarnLevel, parseLevel(" warning "))
	require.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	require.Equal(t, zapcore.InfoLevel, parseLevel(""))
	require.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestFromFallsBackToSingleton(t *testing.T) {
	nop := zap.NewNop()
	Replace(nop)
	t.Cleanup(func() { Replace(nil) })

	require.Same(t, nop, From(context.Background()))

	scoped := zap.NewExample()
	ctx := ToContext(context.Background(), scoped)
	require.Same(t, scoped, From(ctx))
}

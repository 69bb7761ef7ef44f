package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/supernova0730/mbsms/adapters/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	_ logger.Full         = (*St)(nil)
	_ logger.Lite         = (*St)(nil)
	_ logger.WarnAndError = (*St)(nil)
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelInfo, ParseLevel("info"))
	require.Equal(t, LevelDebug, ParseLevel("debug"))
	require.Equal(t, LevelWarn, ParseLevel("warn"))
	require.Equal(t, LevelWarn, ParseLevel("verbose"))
}

func TestErrorwAppendsError(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	lg := NewFromLogger(zap.New(core)).With("component", "test")

	lg.Errorw("Fail to send http-request", errors.New("boom"), "uri", "https://api.messagebird.com/api/sms")
	lg.Infow("request", "path", "api/credits")

	entries := logs.All()
	require.Len(t, entries, 2)

	ctx := entries[0].ContextMap()
	require.Equal(t, "Fail to send http-request", entries[0].Message)
	require.Equal(t, "boom", ctx["error"])
	require.Equal(t, "https://api.messagebird.com/api/sms", ctx["uri"])
	require.Equal(t, "test", ctx["component"])

	require.Equal(t, "api/credits", entries[1].ContextMap()["path"])
}

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zapcore.WarnLevel)
	logger.Info("loaded table")
	logger.Warn("unmapped constituencies", zap.Int("count", 2))
	require.NoError(t, logger.Sync())

	out := buf.String()
	require.NotContains(t, out, "loaded table")
	require.Contains(t, out, "WARN")
	require.Contains(t, out, "unmapped constituencies")
	require.Contains(t, out, `{"count": 2}`)
}

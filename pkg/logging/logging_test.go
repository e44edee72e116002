package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, level, err := New("json", "warn")
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	assert.Equal(t, zapcore.WarnLevel, level.Level())
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	require.NoError(t, SetLevel(level, "debug"))
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, SetLevel(level, "chatty"))
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	require.NoError(t, SetLevel(level, ""))
	assert.Equal(t, zapcore.DebugLevel, level.Level())
}

func TestNew_Console(t *testing.T) {
	logger, level, err := New("console", "")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level.Level())
	logger.Info("console logger", zap.String("k", "v"))
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("json", "nope")
	assert.Error(t, err)
}

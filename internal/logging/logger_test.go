package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewHonoursLevel(t *testing.T) {
	logger, level, err := New("warn")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, zapcore.WarnLevel, level.Level())
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	require.NoError(t, SetLevel(level, "debug"))
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New("chatty")
	assert.Error(t, err)

	level := zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	assert.Error(t, SetLevel(level, "loud"))
	assert.Equal(t, zapcore.ErrorLevel, level.Level())
}

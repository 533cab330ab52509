package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, parseLevel(input), input)
	}
}

func TestInitLoggerWithConfig(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	InitLoggerWithConfig(LoggerConfig{Level: "warn", Stage: "prod", EnableJSON: true})
	require.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))

	InitLoggerWithConfig(LoggerConfig{Level: "debug", Stage: "local", EnableColor: true})
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))
}

func TestOrNop(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	Log = nil
	assert.NotNil(t, OrNop(nil))
	assert.NotPanics(t, func() { Info("no logger configured") })
	assert.NoError(t, Sync())

	explicit := zap.NewExample()
	assert.Same(t, explicit, OrNop(explicit))

	Log = zap.NewNop()
	assert.Same(t, Log, OrNop(nil))
}

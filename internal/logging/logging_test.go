package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	t.Cleanup(InitializeDefault)

	err := Initialize(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	require.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
	require.NotNil(t, output)

	Debug("report built", zap.String("section", "pricing"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"section":"pricing"`)

	InitializeDefault()
	require.Nil(t, output, "log file is closed on reinitialize")
	require.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestInitializeBadPathKeepsLogger(t *testing.T) {
	defer InitializeDefault()

	core, logs := observer.New(zapcore.WarnLevel)
	Use(zap.New(core))

	err := Initialize(Config{Level: "debug", Output: filepath.Join(t.TempDir(), "missing", "sim.log")})
	require.Error(t, err)

	Warn("still here")
	require.Equal(t, 1, logs.Len())
}

func TestInitializeInvalidLevelFallsBackToInfo(t *testing.T) {
	defer InitializeDefault()

	require.NoError(t, Initialize(Config{Level: "loud", Format: "console", Output: "stderr"}))
	require.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestComponentLoggerIsNamed(t *testing.T) {
	defer InitializeDefault()

	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))

	Component("scenario").Debug("loaded", zap.String("path", "a.hcl"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "scenario", entries[0].LoggerName)
	require.Equal(t, "a.hcl", entries[0].ContextMap()["path"])
}

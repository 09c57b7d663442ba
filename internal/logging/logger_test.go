package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")

	require.NoError(t, InitializeFromEnv())
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeWithFile(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := filepath.Join(t.TempDir(), "form.log")

	require.NoError(t, InitializeWithFile("debug", path))
	LogFieldChange("age", "Invalid", "Please enter a valid number")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Field changed")
	assert.Contains(t, string(data), "Please enter a valid number")
	assert.False(t, strings.Contains(string(data), "\x1b["), "file output should not be colourised")

	SetLogger(zap.NewNop())
}

func TestLogSubmission(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	LogSubmission(true, "", zap.String("category", "Adult"))
	LogSubmission(false, "Age cannot be negative")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Submission accepted", entries[0].Message)
	assert.Equal(t, "Adult", entries[0].ContextMap()["category"])
	assert.Equal(t, "Submission rejected", entries[1].Message)
	assert.Equal(t, "Age cannot be negative", entries[1].ContextMap()["reason"])
}

func TestLogFieldChange_OmitsEmptyReason(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	LogFieldChange("name", "Valid", "")

	require.Equal(t, 1, logs.Len())
	_, hasReason := logs.All()[0].ContextMap()["reason"]
	assert.False(t, hasReason)
}

func TestInitializeWithFile_ReportsCallerOutsideWrapper(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := filepath.Join(t.TempDir(), "form.log")

	require.NoError(t, InitializeWithFile("debug", path))
	defer SetLogger(zap.NewNop())

	Info("plain message")
	LogSubmission(true, "")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "logging/logger_test.go:")
		assert.NotContains(t, line, "logging/logger.go:")
	}
}

func TestInitialize_WritesToStderr(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")

	stdoutR, stdoutW, err := os.Pipe()
	require.NoError(t, err)
	stderrR, stderrW, err := os.Pipe()
	require.NoError(t, err)

	origStdout, origStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutW, stderrW
	defer func() { os.Stdout, os.Stderr = origStdout, origStderr }()

	initErr := Initialize("info")
	if initErr == nil {
		Info("to stderr")
		Sync()
	}
	SetLogger(zap.NewNop())
	os.Stdout, os.Stderr = origStdout, origStderr
	require.NoError(t, initErr)

	require.NoError(t, stdoutW.Close())
	require.NoError(t, stderrW.Close())
	stdout, err := io.ReadAll(stdoutR)
	require.NoError(t, err)
	stderr, err := io.ReadAll(stderrR)
	require.NoError(t, err)

	assert.Empty(t, string(stdout))
	assert.Contains(t, string(stderr), "to stderr")
}

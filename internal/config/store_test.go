package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Contains(t, configDir, "profileform")

	switch runtime.GOOS {
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" {
			assert.Contains(t, configDir, ".config")
		}
	}
}

func TestGetConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	p, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(p))

	t.Setenv(PathEnvVar, "/tmp/custom.yaml")
	p, err = GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", p)
}

func TestLoadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(PathEnvVar, path)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nform:\n  highlight_delay: 3s\n"), 0600))

	cfg, got, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 3*time.Second, cfg.Form.HighlightDelay)
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 2*time.Second, cfg.Form.HighlightDelay)
	assert.Equal(t, DefaultPlaceholder, cfg.Form.Placeholder)
	assert.True(t, cfg.Display.AltScreen)
	assert.True(t, cfg.Display.ShowHelp)
	assert.Empty(t, cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Form.HighlightDelay = 1500 * time.Millisecond
	cfg.Form.Placeholder = "Waiting for input"
	cfg.Display.AltScreen = false
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# profileform configuration"))
	assert.Contains(t, string(data), "highlight_delay: 1.5s")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist), "temp file should be renamed away")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nform:\n  highlight_delay: 3s\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Form.HighlightDelay)
	assert.Equal(t, DefaultPlaceholder, cfg.Form.Placeholder)
	assert.True(t, cfg.Display.AltScreen)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nform:\n  highlight_delay: 3s\n"), 0600))

	t.Setenv("PROFILEFORM_HIGHLIGHT_DELAY", "750ms")
	t.Setenv("PROFILEFORM_ALT_SCREEN", "false")
	t.Setenv("PROFILEFORM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.Form.HighlightDelay)
	assert.False(t, cfg.Display.AltScreen)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad yaml", "version: [", "failed to parse config file"},
		{"wrong version", "version: 2\n", "unsupported config version"},
		{"zero delay", "version: 1\nform:\n  highlight_delay: 0s\n", "highlight_delay must be positive"},
		{"huge delay", "version: 1\nform:\n  highlight_delay: 2h\n", "at most 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, CreateDefaultConfig(path, false))
	err := CreateDefaultConfig(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrExist))

	require.NoError(t, CreateDefaultConfig(path, true))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

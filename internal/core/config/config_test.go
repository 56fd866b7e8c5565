package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		dataDir := t.TempDir()

		cfg, err := Load(filepath.Join(dataDir, "nope.yml"), dataDir)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "tokyo-night", cfg.Theme)
		assert.Equal(t, 500, cfg.Chat.MaxMessages)
		assert.True(t, cfg.Calendar.Enabled)
		assert.Equal(t, dataDir, cfg.DataDir)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dataDir := t.TempDir()
		path := filepath.Join(dataDir, "pal.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
theme: gruvbox
chat:
  max_messages: 50
calendar:
  enabled: false
`), 0o644))

		cfg, err := Load(path, dataDir)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "gruvbox", cfg.Theme)
		assert.Equal(t, 50, cfg.Chat.MaxMessages)
		assert.False(t, cfg.Calendar.Enabled)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		dataDir := t.TempDir()
		path := filepath.Join(dataDir, "pal.yml")
		require.NoError(t, os.WriteFile(path, []byte("theme: onedark\n"), 0o644))

		cfg, err := Load(path, dataDir)
		require.NoError(t, err)
		assert.Equal(t, "onedark", cfg.Theme)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 500, cfg.Chat.MaxMessages)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		dataDir := t.TempDir()
		path := filepath.Join(dataDir, "pal.yml")
		require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

		_, err := Load(path, dataDir)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty data dir", func(t *testing.T) {
		cfg := valid()
		cfg.DataDir = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown theme", func(t *testing.T) {
		cfg := valid()
		cfg.Theme = "solarized"
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero chat cap", func(t *testing.T) {
		cfg := valid()
		cfg.Chat.MaxMessages = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLogFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"
	assert.Equal(t, filepath.Join("/data", "logs", "pal.log"), cfg.LogFile())

	cfg.Log.File = "/tmp/custom.log"
	assert.Equal(t, "/tmp/custom.log", cfg.LogFile())
}

package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaaarruuu/communitydesk/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := model.LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Display.Theme)
	assert.True(t, cfg.Display.RememberLogin)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &model.AppConfig{
		Database: model.DatabaseConfig{Path: "/tmp/desk.db"},
		Display:  model.DisplayConfig{Theme: "dark", RememberLogin: false},
	}
	require.NoError(t, model.SaveConfig(path, cfg))

	loaded, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/desk.db", loaded.Database.Path)
	assert.Equal(t, "dark", loaded.Display.Theme)
	assert.False(t, loaded.Display.RememberLogin)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  theme: light\n"), 0o644))

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Display.Theme)
	// Unset keys fall back to defaults.
	assert.NotEmpty(t, cfg.Database.Path)
}

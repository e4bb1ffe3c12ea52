package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
source: ./project/src
destination: /srv/ignition/script-python
project: WaterPlant
modules:
  - plant
  - shared
tabSize: 8
charToTab: false
ignore:
  - "__pycache__/"
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "./project/src", cfg.Source)
		assert.Equal(t, "/srv/ignition/script-python", cfg.Destination)
		assert.Equal(t, "WaterPlant", cfg.Project)
		assert.Equal(t, []string{"plant", "shared"}, cfg.Modules)
		assert.Equal(t, 8, cfg.TabSize)
		require.NotNil(t, cfg.CharToTab)
		assert.False(t, *cfg.CharToTab)
		assert.Equal(t, []string{"__pycache__/"}, cfg.Ignore)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Source)
		assert.Nil(t, cfg.CharToTab)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("SCRIPTSYNC_SOURCE", "/env/src")
		t.Setenv("SCRIPTSYNC_PROJECT", "EnvProject")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/env/src", cfg.Source)
		assert.Equal(t, "EnvProject", cfg.Project)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("SCRIPTSYNC_PROJECT", "EnvProject")

		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		content := `project: FileProject`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "EnvProject", cfg.Project)
	})
}

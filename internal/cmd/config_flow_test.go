package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/scriptsync/cli/internal/errors"
)

func TestConfigInitAndVet(t *testing.T) {
	t.Run("init creates the config file and vet accepts it", func(t *testing.T) {
		path := isolateConfig(t)

		out, err := execute(t, "config", "init")
		require.NoError(t, err)
		assert.Contains(t, out, "Config file created")
		assert.FileExists(t, path)

		out, err = execute(t, "config", "vet")
		require.NoError(t, err)
		assert.Contains(t, out, "Config file is valid")
	})

	t.Run("init refuses to overwrite without force", func(t *testing.T) {
		isolateConfig(t)

		_, err := execute(t, "config", "init")
		require.NoError(t, err)

		_, err = execute(t, "config", "init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		_, err = execute(t, "config", "init", "--force")
		require.NoError(t, err)
	})

	t.Run("vet reports a missing file", func(t *testing.T) {
		isolateConfig(t)

		_, err := execute(t, "config", "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})

	t.Run("vet rejects an invalid file", func(t *testing.T) {
		path := isolateConfig(t)
		require.NoError(t, os.WriteFile(path, []byte("tabSize: -3\n"), 0o644))

		_, err := execute(t, "config", "vet")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitConfigError, oerrors.ExitCodeFromError(err))
	})
}

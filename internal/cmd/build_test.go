package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/scriptsync/cli/internal/errors"
	"github.com/scriptsync/cli/internal/testutil"
)

// isolateConfig points the CLI at a config file under a temp dir, away from
// any real user config, and returns the path.
func isolateConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("SCRIPTSYNC_CONFIG", path)
	return path
}

// execute runs the CLI with the given args and returns the combined
// command output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestBuildCommand(t *testing.T) {
	t.Run("forward build writes the script library", func(t *testing.T) {
		isolateConfig(t)
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, src, "pkg/mod.py", "import target.lib\n    x = 1")

		_, err := execute(t, "build", "-s", src, "-d", dest, "-l", "target")
		require.NoError(t, err)

		code := testutil.ReadFile(t, filepath.Join(dest, "pkg.mod", "code.py"))
		assert.Equal(t, "# import target.lib\nlib = target.lib\n\tx = 1", code)
		assert.FileExists(t, filepath.Join(dest, "pkg.mod", "resource.json"))
	})

	t.Run("reverse build restores the project tree", func(t *testing.T) {
		isolateConfig(t)
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, dest, "pkg.mod/code.py", "# import target.lib\nlib = target.lib\n\tx = 1")

		_, err := execute(t, "build", "-r", "-s", src, "-d", dest, "-l", "target")
		require.NoError(t, err)

		code := testutil.ReadFile(t, filepath.Join(src, "pkg", "mod.py"))
		assert.Equal(t, "import target.lib\n    x = 1", code)
	})

	t.Run("zero tab size is a configuration error", func(t *testing.T) {
		isolateConfig(t)
		src, dest := t.TempDir(), t.TempDir()

		_, err := execute(t, "build", "-s", src, "-d", dest, "-n", "0")
		assert.ErrorIs(t, err, oerrors.ErrConfig)
	})

	t.Run("missing source fails", func(t *testing.T) {
		isolateConfig(t)
		_, err := execute(t, "build",
			"-s", filepath.Join(t.TempDir(), "nope"),
			"-d", t.TempDir())
		assert.ErrorIs(t, err, oerrors.ErrConfig)
	})

	t.Run("config file supplies defaults", func(t *testing.T) {
		path := isolateConfig(t)
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, filepath.Dir(path), "config.yaml",
			"source: "+src+"\ndestination: "+dest+"\nmodules:\n  - target\n")
		testutil.WriteFile(t, src, "mod.py", "import target.lib\n")

		_, err := execute(t, "build")
		require.NoError(t, err)

		code := testutil.ReadFile(t, filepath.Join(dest, "mod", "code.py"))
		assert.Equal(t, "# import target.lib\nlib = target.lib\n", code)
	})
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scriptsync:")
	assert.Contains(t, out, "Version:")
}

package builder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptsync/cli/internal/config"
	oerrors "github.com/scriptsync/cli/internal/errors"
	"github.com/scriptsync/cli/internal/testutil"
)

func testConfig(src, dest string) config.Config {
	return config.Config{
		Source:      src,
		Destination: dest,
		Project:     "TestProject",
		TabSize:     4,
		CharToTab:   true,
	}
}

func TestForward(t *testing.T) {
	t.Run("converts a module into a library resource", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, src, "pkg/mod.py", "import target.lib\n    x = 1")

		cfg := testConfig(src, dest)
		cfg.Modules = []string{"target"}

		result, err := New(cfg).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "forward", result.Direction)
		assert.Equal(t, []string{"system", "target"}, result.Modules)

		code := testutil.ReadFile(t, filepath.Join(dest, "pkg.mod", "code.py"))
		assert.Equal(t, "# import target.lib\nlib = target.lib\n\tx = 1", code)

		resource := testutil.ReadFile(t, filepath.Join(dest, "pkg.mod", "resource.json"))
		assert.Contains(t, resource, `"scope": "A"`)
		assert.Contains(t, resource, `"code.py"`)
	})

	t.Run("derives the module set from top-level names", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteTree(t, src, map[string]string{
			"plant/tags.py":   "import plant.alarms\n",
			"plant/alarms.py": "import system.tag\n",
			"util.py":         "import other.thing\n",
		})

		result, err := New(testConfig(src, dest)).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"plant", "system", "util"}, result.Modules)

		code := testutil.ReadFile(t, filepath.Join(dest, "plant.tags", "code.py"))
		assert.Equal(t, "# import plant.alarms\nalarms = plant.alarms\n", code)

		// other is not a top-level name, so its import passes through
		code = testutil.ReadFile(t, filepath.Join(dest, "util", "code.py"))
		assert.Equal(t, "import other.thing\n", code)
	})

	t.Run("skips package markers and pycache", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteTree(t, src, map[string]string{
			"pkg/__init__.py":                    "",
			"pkg/mod.py":                         "x = 1\n",
			"pkg/__pycache__/mod.cpython-27.pyc": "binary",
			"pkg/notes.txt":                      "not python",
		})

		_, err := New(testConfig(src, dest)).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t,
			[]string{"pkg.mod/code.py", "pkg.mod/resource.json"},
			testutil.ListTree(t, dest))
	})

	t.Run("swaps the coding specification line", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, src, "mod.py", "# coding=utf-8\nx = 1\n")

		_, err := New(testConfig(src, dest)).Run(context.Background())
		require.NoError(t, err)

		code := testutil.ReadFile(t, filepath.Join(dest, "mod", "code.py"))
		assert.Equal(t, "# CODING=utf-8\nx = 1\n", code)
	})

	t.Run("indentation conversion can be disabled", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, src, "mod.py", "    x = 1\n")

		cfg := testConfig(src, dest)
		cfg.CharToTab = false

		_, err := New(cfg).Run(context.Background())
		require.NoError(t, err)

		code := testutil.ReadFile(t, filepath.Join(dest, "mod", "code.py"))
		assert.Equal(t, "    x = 1\n", code)
	})

	t.Run("rejects dotted directory names", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, src, "weird.name/mod.py", "x = 1\n")

		_, err := New(testConfig(src, dest)).Run(context.Background())
		assert.ErrorIs(t, err, oerrors.ErrInvalidPath)
	})

	t.Run("missing source root is a configuration error", func(t *testing.T) {
		cfg := testConfig(filepath.Join(t.TempDir(), "nope"), t.TempDir())
		_, err := New(cfg).Run(context.Background())
		assert.ErrorIs(t, err, oerrors.ErrConfig)
	})

	t.Run("clean removes stale destination content", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, src, "mod.py", "x = 1\n")
		testutil.WriteFile(t, dest, "stale.old/code.py", "gone")

		cfg := testConfig(src, dest)
		cfg.Clean = true

		result, err := New(cfg).Run(context.Background())
		require.NoError(t, err)
		assert.True(t, result.Cleaned)

		assert.Equal(t,
			[]string{"mod/code.py", "mod/resource.json"},
			testutil.ListTree(t, dest))
	})

	t.Run("cancelled context aborts between files", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, src, "mod.py", "x = 1\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(testConfig(src, dest)).Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReverse(t *testing.T) {
	t.Run("restores the hierarchical layout", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, dest, "pkg.sub.mod/code.py",
			"# import target.lib\nlib = target.lib\n\tx = 1")
		testutil.WriteFile(t, dest, "pkg.sub.mod/resource.json", "{}")

		cfg := testConfig(src, dest)
		cfg.Reverse = true
		cfg.Modules = []string{"target"}

		result, err := New(cfg).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "reverse", result.Direction)

		code := testutil.ReadFile(t, filepath.Join(src, "pkg", "sub", "mod.py"))
		assert.Equal(t, "import target.lib\n    x = 1", code)

		assert.FileExists(t, filepath.Join(src, "pkg", "__init__.py"))
		assert.FileExists(t, filepath.Join(src, "pkg", "sub", "__init__.py"))
	})

	t.Run("derives modules from flattened folder names", func(t *testing.T) {
		src, dest := t.TempDir(), t.TempDir()
		testutil.WriteFile(t, dest, "plant.tags/code.py",
			"# import plant.alarms\nalarms = plant.alarms\n")

		cfg := testConfig(src, dest)
		cfg.Reverse = true

		result, err := New(cfg).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"plant", "system"}, result.Modules)

		code := testutil.ReadFile(t, filepath.Join(src, "plant", "tags.py"))
		assert.Equal(t, "import plant.alarms\n", code)
	})

	t.Run("missing library root is not found", func(t *testing.T) {
		cfg := testConfig(t.TempDir(), filepath.Join(t.TempDir(), "nope"))
		cfg.Reverse = true

		_, err := New(cfg).Run(context.Background())
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})
}

func TestRoundTrip(t *testing.T) {
	original := map[string]string{
		"plant/__init__.py": "",
		"plant/tags.py":     "# coding=utf-8\nimport system.tag\nimport plant.alarms\n\ndef read():\n    return system.tag.read()\n",
		"plant/alarms.py":   "from plant.tags import read\n\ndef check():\n    if read():\n        return True\n    return False\n",
		"util.py":           "import json\n\nx = 1\n",
	}

	srcA, dest, srcB := t.TempDir(), t.TempDir(), t.TempDir()
	testutil.WriteTree(t, srcA, original)

	fwd := testConfig(srcA, dest)
	_, err := New(fwd).Run(context.Background())
	require.NoError(t, err)

	rev := testConfig(srcB, dest)
	rev.Reverse = true
	_, err = New(rev).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testutil.ListTree(t, srcA), testutil.ListTree(t, srcB))
	for name, content := range original {
		assert.Equal(t, content, testutil.ReadFile(t, filepath.Join(srcB, filepath.FromSlash(name))),
			"content of %s", name)
	}
}

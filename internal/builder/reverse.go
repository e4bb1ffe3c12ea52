package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/scriptsync/cli/internal/errors"
	"github.com/scriptsync/cli/internal/output"
	"github.com/scriptsync/cli/internal/pathmap"
	"github.com/scriptsync/cli/internal/rewrite"
)

// reverse converts the flattened script library back into the hierarchical
// project tree: pkg.sub.mod/code.py becomes pkg/sub/mod.py with imports and
// indentation restored, and an __init__.py marker in every package
// directory. Alias resolution runs before path unflattening so the restored
// imports refer to the directory names being reconstructed.
func (b *Builder) reverse(ctx context.Context) (*Result, error) {
	if _, err := os.Stat(b.cfg.Destination); err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("script library root is not readable: %v", err),
			b.cfg.Destination,
			"Run a forward build first, or pass -d/--destination.")
	}

	result := &Result{
		Direction: "reverse",
		Files:     make(map[string]string),
	}

	if b.cfg.Clean {
		if err := b.clean(b.cfg.Source); err != nil {
			return nil, err
		}
		result.Cleaned = true
	}

	names, err := b.discoverLibrary()
	if err != nil {
		return nil, err
	}

	modules := b.moduleSet(firstSegments(names))
	result.Modules = modules.Names()
	output.Debug("target module set", "modules", strings.Join(result.Modules, " "))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.convertReverse(name, modules, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// discoverLibrary lists the flattened module folders (those containing a
// code.py) directly under the library root, sorted.
func (b *Builder) discoverLibrary() ([]string, error) {
	entries, err := os.ReadDir(b.cfg.Destination)
	if err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("scanning %s", b.cfg.Destination))
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || b.excluded(e.Name()+"/") {
			continue
		}
		codePath := filepath.Join(b.cfg.Destination, e.Name(), CodeFile)
		if _, err := os.Stat(codePath); err != nil {
			output.Debug("skipping folder without code file", "name", e.Name())
			continue
		}
		names = append(names, e.Name())
	}

	sort.Strings(names)
	return names, nil
}

// firstSegments derives candidate module names from flattened folder names.
func firstSegments(names []string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, name := range names {
		first, _, _ := strings.Cut(name, ".")
		if _, ok := seen[first]; !ok {
			seen[first] = struct{}{}
			out = append(out, first)
		}
	}

	return out
}

// convertReverse restores one flattened module into the project tree.
func (b *Builder) convertReverse(name string, modules rewrite.ModuleSet, result *Result) error {
	codePath := filepath.Join(b.cfg.Destination, name, CodeFile)
	data, err := os.ReadFile(codePath)
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("reading %s", codePath))
	}

	code := swapCodingLine(string(data), false)
	code = rewrite.FromAliases(code, modules)
	code = b.tabsToSpaces(code)

	rel, err := pathmap.ToHierarchical(pathmap.FlatPath{Name: name, Ext: ".py"})
	if err != nil {
		return err
	}

	target := filepath.Join(b.cfg.Source, rel)
	if err := b.ensurePackageDirs(filepath.Dir(target), result); err != nil {
		return err
	}

	if err := os.WriteFile(target, []byte(code), 0o644); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s", rel))
	}

	output.Debug("restored", "from", name+"/"+CodeFile, "to", rel)
	result.Files[filepath.ToSlash(rel)] = output.StatusConverted

	return nil
}

// ensurePackageDirs creates dir and every intermediate directory under the
// source root, dropping an empty __init__.py package marker into each.
func (b *Builder) ensurePackageDirs(dir string, result *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("creating %s", dir))
	}

	root, err := filepath.Abs(b.cfg.Source)
	if err != nil {
		return err
	}

	for d := dir; ; d = filepath.Dir(d) {
		abs, err := filepath.Abs(d)
		if err != nil {
			return err
		}
		if abs == root || !strings.HasPrefix(abs, root+string(filepath.Separator)) {
			break
		}

		initPath := filepath.Join(d, "__init__.py")
		if err := os.WriteFile(initPath, nil, 0o644); err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("writing %s", initPath))
		}

		rel, err := filepath.Rel(b.cfg.Source, initPath)
		if err == nil {
			result.Files[filepath.ToSlash(rel)] = ""
		}
	}

	return nil
}

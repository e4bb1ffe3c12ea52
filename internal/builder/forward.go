package builder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/scriptsync/cli/internal/errors"
	"github.com/scriptsync/cli/internal/output"
	"github.com/scriptsync/cli/internal/pathmap"
	"github.com/scriptsync/cli/internal/rewrite"
)

// forward converts the hierarchical project tree into the flattened script
// library: every pkg/sub/mod.py becomes pkg.sub.mod/code.py plus a
// resource.json record, with imports aliased and indentation tabified.
func (b *Builder) forward(ctx context.Context) (*Result, error) {
	if _, err := os.Stat(b.cfg.Source); err != nil {
		return nil, oerrors.NewConfigError(
			fmt.Sprintf("source root is not readable: %v", err),
			b.cfg.Source,
			"Pass -s/--source or set source in the config file.")
	}

	result := &Result{
		Direction: "forward",
		Files:     make(map[string]string),
	}

	if b.cfg.Clean {
		if err := b.clean(b.cfg.Destination); err != nil {
			return nil, err
		}
		result.Cleaned = true
	}

	// Discovery completes before any file is rewritten: the Target Module
	// Set must be stable for the whole run.
	files, err := b.discoverSources()
	if err != nil {
		return nil, err
	}

	modules := b.moduleSet(topLevelNames(files))
	result.Modules = modules.Names()
	output.Debug("target module set", "modules", strings.Join(result.Modules, " "))

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.convertForward(rel, modules, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// discoverSources enumerates the python files to convert, as sorted
// slash-separated paths relative to the source root. Package __init__.py
// markers and ignored paths are skipped.
func (b *Builder) discoverSources() ([]string, error) {
	var files []string

	err := filepath.WalkDir(b.cfg.Source, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return oerrors.WrapIO(err, fmt.Sprintf("scanning %s", p))
		}

		rel, err := filepath.Rel(b.cfg.Source, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if b.excluded(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if b.excluded(rel) {
			return nil
		}
		if path.Ext(rel) != ".py" || strings.Contains(path.Base(rel), "__init__") {
			output.Debug("skipping non-module file", "path", rel)
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// topLevelNames derives candidate module names from discovered file paths:
// the first path segment of each, with the extension stripped for files that
// sit directly in the source root.
func topLevelNames(files []string) []string {
	seen := make(map[string]struct{})
	var names []string

	for _, rel := range files {
		first, _, nested := strings.Cut(rel, "/")
		if !nested {
			first = strings.TrimSuffix(first, path.Ext(first))
		}
		if _, ok := seen[first]; !ok {
			seen[first] = struct{}{}
			names = append(names, first)
		}
	}

	return names
}

// convertForward transforms one source file and writes its script-library
// resource.
func (b *Builder) convertForward(rel string, modules rewrite.ModuleSet, result *Result) error {
	data, err := os.ReadFile(filepath.Join(b.cfg.Source, filepath.FromSlash(rel)))
	if err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("reading %s", rel))
	}

	code := swapCodingLine(string(data), true)
	code = rewrite.ToAliases(code, modules)
	code = b.spacesToTabs(code)

	fp, err := pathmap.ToFlattened(rel)
	if err != nil {
		return err
	}

	dir := filepath.Join(b.cfg.Destination, fp.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("creating %s", dir))
	}

	if err := os.WriteFile(filepath.Join(dir, CodeFile), []byte(code), 0o644); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("writing %s/%s", fp.Name, CodeFile))
	}
	if err := writeResource(dir); err != nil {
		return err
	}

	output.Debug("converted", "from", rel, "to", fp.Name+"/"+CodeFile)
	result.Files[path.Join(fp.Name, CodeFile)] = output.StatusConverted
	result.Files[path.Join(fp.Name, resourceFile)] = ""

	return nil
}

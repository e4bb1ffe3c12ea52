// Package builder walks a source tree and converts it between the standard
// hierarchical project layout and the flattened script-library layout.
//
// The walk is single-threaded and fail-fast: files are processed one at a
// time in sorted order, and the first read or write error aborts the run.
// Already-written output from a partial run is left in place.
package builder

import (
	"context"
	"fmt"
	"os"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/scriptsync/cli/internal/config"
	oerrors "github.com/scriptsync/cli/internal/errors"
	"github.com/scriptsync/cli/internal/indent"
	"github.com/scriptsync/cli/internal/output"
	"github.com/scriptsync/cli/internal/rewrite"
)

// CodeFile is the file name a module's code is stored under in the script
// library.
const CodeFile = "code.py"

// defaultIgnores are always excluded from the walk, on top of any
// user-configured patterns.
var defaultIgnores = []string{"__pycache__/", ".git/"}

// Result summarizes a completed run.
type Result struct {
	// Direction is "forward" or "reverse".
	Direction string

	// Modules is the Target Module Set the run used, sorted.
	Modules []string

	// Files maps written paths (relative to the output root) to an optional
	// description, for the build report.
	Files map[string]string

	// Cleaned reports whether the output tree was deleted before writing.
	Cleaned bool
}

// Builder runs one conversion pass over a tree.
type Builder struct {
	cfg     config.Config
	matcher *ignore.GitIgnore
}

// New creates a Builder for a validated run configuration.
func New(cfg config.Config) *Builder {
	patterns := append(append([]string{}, defaultIgnores...), cfg.Ignore...)
	return &Builder{
		cfg:     cfg,
		matcher: ignore.CompileIgnoreLines(patterns...),
	}
}

// Run executes the configured pipeline. The context is checked between
// files, so cancellation takes effect at file granularity without changing
// the output of files already written.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	if b.cfg.Reverse {
		return b.reverse(ctx)
	}
	return b.forward(ctx)
}

// moduleSet returns the Target Module Set for the run: the explicit
// configuration when present, otherwise the names derived from the tree.
// The platform "system" API library is always a member, since its imports
// must be aliased regardless of the project's own modules.
func (b *Builder) moduleSet(derived []string) rewrite.ModuleSet {
	set := rewrite.NewModuleSet("system")
	if len(b.cfg.Modules) > 0 {
		for _, m := range b.cfg.Modules {
			set.Add(m)
		}
		return set
	}
	for _, m := range derived {
		set.Add(m)
	}
	return set
}

// clean removes everything under root. Irreversible; only invoked when the
// run configuration explicitly asks for it.
func (b *Builder) clean(root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	output.Warn("cleaning output tree", "path", root)
	if err := os.RemoveAll(root); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("cleaning %s", root))
	}
	return nil
}

// excluded reports whether a slash-separated relative path matches the
// ignore patterns.
func (b *Builder) excluded(rel string) bool {
	return b.matcher.MatchesPath(rel)
}

// swapCodingLine rewrites the python 3.x coding specification so it does not
// confuse the platform's jython runtime, and back. Only the first occurrence
// is touched.
func swapCodingLine(code string, forward bool) string {
	if forward {
		return strings.Replace(code, "# coding=", "# CODING=", 1)
	}
	return strings.Replace(code, "# CODING=", "# coding=", 1)
}

// transcodeLines applies fn to every line of code, preserving line breaks.
func transcodeLines(code string, fn func(string) string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

// spacesToTabs converts the leading indentation of every line when the run
// has indentation conversion enabled.
func (b *Builder) spacesToTabs(code string) string {
	if !b.cfg.CharToTab {
		return code
	}
	return transcodeLines(code, func(line string) string {
		return indent.SpacesToTabs(line, b.cfg.TabSize)
	})
}

// tabsToSpaces is the reverse-direction counterpart of spacesToTabs.
func (b *Builder) tabsToSpaces(code string) string {
	if !b.cfg.CharToTab {
		return code
	}
	return transcodeLines(code, func(line string) string {
		return indent.TabsToSpaces(line, b.cfg.TabSize)
	})
}

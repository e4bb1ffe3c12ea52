// Package rewrite converts import statements that reference target modules
// into local variable aliases, and back. The script library resolves modules
// by local names rather than hierarchical import paths, so cross-referencing
// code has to be rewritten textually, not just relocated.
//
// Rewriting is line-local: no cross-file symbol resolution, no language
// parsing. The forward direction keeps the original statement behind a "# "
// comment so the reverse direction can restore it byte for byte.
package rewrite

import (
	"fmt"
	"strings"
)

// LineKind classifies a single line of source text.
type LineKind int

const (
	// OtherLine is any line the rewriter leaves untouched.
	OtherLine LineKind = iota

	// ImportLine is a top-level import of a target module, in either the
	// "import a.b.c" or "from a.b import c, d" form.
	ImportLine

	// CommentedImportLine is an ImportLine behind a "# " comment, as written
	// by the forward direction.
	CommentedImportLine
)

// Classify determines how a line is treated by the rewriter. Lines that look
// like imports but do not parse cleanly (trailing commas, parenthesized
// groups, multiple targets) classify as OtherLine: the rewriter never
// rewrites speculatively.
func Classify(line string, modules ModuleSet) LineKind {
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		if isTargetImport(strings.TrimSpace(rest), modules) {
			return CommentedImportLine
		}
		return OtherLine
	}

	if isTargetImport(strings.TrimRight(line, " \t"), modules) {
		return ImportLine
	}
	return OtherLine
}

// isTargetImport reports whether stmt is a well-formed import whose first
// dotted segment is in the module set. Only unindented statements qualify.
func isTargetImport(stmt string, modules ModuleSet) bool {
	dotted := importTarget(stmt)
	if dotted == "" {
		return false
	}
	root, _, _ := strings.Cut(dotted, ".")
	return modules.Contains(root)
}

// importTarget extracts the dotted module path from an import statement.
// It returns "" when the line is not a single, plain import.
func importTarget(stmt string) string {
	if rest, ok := strings.CutPrefix(stmt, "from "); ok {
		dotted, _, found := strings.Cut(rest, " import ")
		if !found {
			return ""
		}
		return validDotted(strings.TrimSpace(dotted))
	}
	if rest, ok := strings.CutPrefix(stmt, "import "); ok {
		return validDotted(strings.TrimSpace(rest))
	}
	return ""
}

// validDotted returns dotted unchanged when it is a plain dotted path,
// "" otherwise (empty segments, whitespace, or comma-separated lists).
func validDotted(dotted string) string {
	if dotted == "" {
		return ""
	}
	for _, seg := range strings.Split(dotted, ".") {
		if seg == "" || strings.ContainsAny(seg, " \t,()") {
			return ""
		}
	}
	return dotted
}

// AliasLines returns the local alias assignments equivalent to an import
// statement. "from a.b import c, d" yields "c = a.b.c" and "d = a.b.d";
// "import a.b.c" yields "c = a.b.c". The input must already classify as an
// import; unrecognized statements yield nil.
func AliasLines(stmt string) []string {
	if rest, ok := strings.CutPrefix(stmt, "from "); ok {
		dotted, names, found := strings.Cut(rest, " import ")
		if !found {
			return nil
		}
		dotted = strings.TrimSpace(dotted)

		var out []string
		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			out = append(out, fmt.Sprintf("%s = %s.%s", name, dotted, name))
		}
		return out
	}

	if rest, ok := strings.CutPrefix(stmt, "import "); ok {
		dotted := strings.TrimSpace(rest)
		leaf := dotted
		if i := strings.LastIndex(dotted, "."); i >= 0 {
			leaf = dotted[i+1:]
		}
		return []string{fmt.Sprintf("%s = %s", leaf, dotted)}
	}

	return nil
}

// ToAliases rewrites every target import in code into a commented-out
// original plus its alias assignments. All other lines pass through
// unchanged.
func ToAliases(code string, modules ModuleSet) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if Classify(line, modules) != ImportLine {
			out = append(out, line)
			continue
		}

		stmt := strings.TrimSpace(line)
		out = append(out, "# "+stmt)
		out = append(out, AliasLines(stmt)...)
	}

	return strings.Join(out, "\n")
}

// FromAliases is the inverse of ToAliases: commented target imports are
// uncommented and the alias assignments they produced are dropped. Alias
// removal requires the forward modifications to be intact, or the same
// pattern followed for edits made inside the script library.
func FromAliases(code string, modules ModuleSet) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	aliased := make(map[string]struct{})

	for _, line := range lines {
		if Classify(line, modules) != CommentedImportLine {
			out = append(out, line)
			continue
		}

		stmt := strings.TrimSpace(strings.TrimPrefix(line, "# "))
		out = append(out, stmt)
		for _, alias := range AliasLines(stmt) {
			aliased[alias] = struct{}{}
		}
	}

	kept := out[:0]
	for _, line := range out {
		if _, ok := aliased[line]; ok {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

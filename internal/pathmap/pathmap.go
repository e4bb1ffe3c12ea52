// Package pathmap translates module paths between the hierarchical project
// layout (pkg/sub/mod.py) and the flattened script-library layout, where the
// same unit is stored under a single dot-joined folder name (pkg.sub.mod).
package pathmap

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/scriptsync/cli/internal/errors"
)

// FlatPath is the flattened representation of a module path.
type FlatPath struct {
	// Name is the dot-joined segment name, e.g. "pkg.sub.mod".
	Name string

	// Ext is the original file extension including the dot, e.g. ".py".
	Ext string
}

// ToFlattened converts a hierarchical relative path into its flattened form.
// The path is interpreted relative to the module root, using either slash.
//
// Segment names must not contain literal dots: a dot inside a directory or
// stem name makes the mapping ambiguous and is rejected rather than guessed.
func ToFlattened(rel string) (FlatPath, error) {
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." {
		return FlatPath{}, oerrors.NewInvalidPathError("empty module path", rel)
	}

	ext := path.Ext(rel)
	stem := strings.TrimSuffix(rel, ext)

	segments := strings.Split(stem, "/")
	for _, seg := range segments {
		if seg == "" {
			return FlatPath{}, oerrors.NewInvalidPathError("empty path segment", rel)
		}
		if strings.Contains(seg, ".") {
			return FlatPath{}, oerrors.NewInvalidPathError(
				fmt.Sprintf("segment %q contains a dot", seg), rel)
		}
	}

	return FlatPath{Name: strings.Join(segments, "."), Ext: ext}, nil
}

// ToHierarchical converts a flattened path back into its hierarchical
// relative form, e.g. {Name: "pkg.sub.mod", Ext: ".py"} -> "pkg/sub/mod.py".
// The result uses the OS path separator and is the exact inverse of
// ToFlattened for any path ToFlattened accepts.
func ToHierarchical(fp FlatPath) (string, error) {
	if fp.Name == "" {
		return "", oerrors.NewInvalidPathError("empty flattened name", fp.Name)
	}

	segments := strings.Split(fp.Name, ".")
	for _, seg := range segments {
		if seg == "" {
			return "", oerrors.NewInvalidPathError("empty segment in flattened name", fp.Name)
		}
	}

	segments[len(segments)-1] += fp.Ext
	return filepath.Join(segments...), nil
}

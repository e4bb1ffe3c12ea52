// Package indent re-encodes the leading whitespace of text lines between
// space blocks and tab characters. Content after the first non-matching
// character is never altered.
package indent

import "strings"

// SpacesToTabs converts a line's leading spaces into tabs. A run of w leading
// spaces becomes w/tabSize tabs followed by w%tabSize leftover spaces, which
// preserves exact column alignment when w is not a tab multiple. tabSize must
// be a positive integer; callers validate it at configuration time.
func SpacesToTabs(line string, tabSize int) string {
	w := leadingRun(line, ' ')
	if w < tabSize {
		return line
	}

	tabs := w / tabSize
	rest := w % tabSize
	return strings.Repeat("\t", tabs) + strings.Repeat(" ", rest) + line[w:]
}

// TabsToSpaces converts a line's leading tabs into tabSize spaces each.
func TabsToSpaces(line string, tabSize int) string {
	n := leadingRun(line, '\t')
	if n == 0 {
		return line
	}

	return strings.Repeat(" ", n*tabSize) + line[n:]
}

// leadingRun returns the length of the leading run of c in line.
func leadingRun(line string, c byte) int {
	i := 0
	for i < len(line) && line[i] == c {
		i++
	}
	return i
}

package indent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpacesToTabs(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		tabSize int
		want    string
	}{
		{"no indentation", "x = 1", 4, "x = 1"},
		{"single level", "    x = 1", 4, "\tx = 1"},
		{"two levels", "        x = 1", 4, "\t\tx = 1"},
		{"leftover spaces keep column", "      x = 1", 4, "\t  x = 1"},
		{"below one tab is untouched", "   x = 1", 4, "   x = 1"},
		{"tab size two", "    x = 1", 2, "\t\tx = 1"},
		{"interior spaces untouched", "\ta  =  1", 4, "\ta  =  1"},
		{"empty line", "", 4, ""},
		{"whitespace only", "        ", 4, "\t\t"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SpacesToTabs(tc.line, tc.tabSize))
		})
	}
}

func TestTabsToSpaces(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		tabSize int
		want    string
	}{
		{"no indentation", "x = 1", 4, "x = 1"},
		{"single tab", "\tx = 1", 4, "    x = 1"},
		{"two tabs", "\t\tx = 1", 4, "        x = 1"},
		{"tab size two", "\t\tx = 1", 2, "    x = 1"},
		{"interior tab untouched", "a\t= 1", 4, "a\t= 1"},
		{"empty line", "", 4, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TabsToSpaces(tc.line, tc.tabSize))
		})
	}
}

func TestSpacesToTabsIdempotent(t *testing.T) {
	lines := []string{
		"x = 1",
		"    x = 1",
		"      x = 1",
		"\t\tx = 1",
		"  \tmixed",
		strings.Repeat(" ", 17) + "deep",
	}

	for _, line := range lines {
		for _, n := range []int{1, 2, 4, 8} {
			once := SpacesToTabs(line, n)
			twice := SpacesToTabs(once, n)
			assert.Equal(t, once, twice, "line %q tab size %d", line, n)
		}
	}
}

func TestRoundTripOnExactMultiples(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		for depth := 0; depth <= 4; depth++ {
			line := strings.Repeat(" ", depth*n) + "body()"
			got := TabsToSpaces(SpacesToTabs(line, n), n)
			assert.Equal(t, line, got, "depth %d tab size %d", depth, n)
		}
	}
}

package rewrite

import "sort"

// ModuleSet is the set of root module names whose imports are rewritten.
// It is built once per run, before any file is transformed, and read-only
// afterwards. Membership is an exact match on the first dotted segment.
type ModuleSet struct {
	names map[string]struct{}
}

// NewModuleSet creates a ModuleSet from the given names.
func NewModuleSet(names ...string) ModuleSet {
	s := ModuleSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n != "" {
			s.names[n] = struct{}{}
		}
	}
	return s
}

// Add inserts a name into the set.
func (s ModuleSet) Add(name string) {
	if name != "" {
		s.names[name] = struct{}{}
	}
}

// Contains reports whether name is in the set.
func (s ModuleSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set.
func (s ModuleSet) Len() int {
	return len(s.names)
}

// Names returns the module names in sorted order.
func (s ModuleSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

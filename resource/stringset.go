package resource

import "slices"

// StringSet is an unordered set of strings. The zero value is an empty set
// that can be read but not written; use NewStringSet to get a writable one.
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	s.Add(items...)

	return s
}

func (s StringSet) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s StringSet) Len() int {
	return len(s)
}

// Sorted returns the elements in ascending order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}

	slices.Sort(out)

	return out
}

// Equal reports whether both sets hold the same elements. A nil set equals an empty one.
func (s StringSet) Equal(other StringSet) bool {
	if len(s) != len(other) {
		return false
	}

	for item := range s {
		if !other.Has(item) {
			return false
		}
	}

	return true
}

func (s StringSet) list() []any {
	sorted := s.Sorted()

	out := make([]any, len(sorted))
	for i, item := range sorted {
		out[i] = item
	}

	return out
}

package types

import "sort"

// Set is a set of symptom names.
type Set map[string]struct{}

// NewSet builds a Set from the given symptom names.
func NewSet(symptoms ...string) Set {
	s := make(Set, len(symptoms))
	for _, sym := range symptoms {
		s[sym] = struct{}{}
	}
	return s
}

// Has reports whether the symptom is in the set.
func (s Set) Has(symptom string) bool {
	_, ok := s[symptom]
	return ok
}

// Add inserts the symptom into the set.
func (s Set) Add(symptom string) {
	s[symptom] = struct{}{}
}

// Remove deletes the symptom from the set.
func (s Set) Remove(symptom string) {
	delete(s, symptom)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for sym := range s {
		out[sym] = struct{}{}
	}
	return out
}

// Union returns a new set containing the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for sym := range s {
		out[sym] = struct{}{}
	}
	for sym := range other {
		out[sym] = struct{}{}
	}
	return out
}

// Diff returns a new set with the members of s that are not in other.
func (s Set) Diff(other Set) Set {
	out := make(Set, len(s))
	for sym := range s {
		if !other.Has(sym) {
			out[sym] = struct{}{}
		}
	}
	return out
}

// IntersectCount returns the number of symptoms present in both sets.
func (s Set) IntersectCount(other Set) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for sym := range small {
		if large.Has(sym) {
			n++
		}
	}
	return n
}

// Equal reports whether both sets contain exactly the same symptoms.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for sym := range s {
		if !other.Has(sym) {
			return false
		}
	}
	return true
}

// Sorted returns the members in lexicographic order. Every piece of the
// engine that iterates a set for scoring, tie-breaking, or random draws
// goes through Sorted so that identical inputs give identical output.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

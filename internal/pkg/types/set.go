package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set implementation for comparable types.
//
// It is backed by a map[T]struct{}, so len and range work on it directly.
// Add and Delete modify the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
//
// Missing elements are ignored.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Difference returns a new set with the elements of s that are not keys of
// other. Any map keyed by T can be used as other, which allows subtracting the
// keys of a lookup result without converting it first.
func Difference[T comparable, V any](s Set[T], other map[T]V) Set[T] {
	out := NewSet[T]()
	for v := range s {
		if _, ok := other[v]; !ok {
			out.Add(v)
		}
	}
	return out
}

// ToIter returns an iterator over the elements in the set.
//
// Iteration order is not guaranteed.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements of the set as a new slice, in no particular
// order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

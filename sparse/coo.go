// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"slices"
)

// cooStore is the coordinate (uncompressed) variant.
// Entries are keyed by (major, minor) per ordering; iteration goes through a
// lazily rebuilt sorted key slice so that every traversal is in storage order.
type cooStore[T Scalar] struct {
	ordering Ordering
	data     map[key]T
	keys     []key // sorted view of data's keys; valid when !dirty
	dirty    bool
}

func newCOO[T Scalar](ord Ordering, capacity int) *cooStore[T] {
	return &cooStore[T]{
		ordering: ord,
		data:     make(map[key]T, capacity),
	}
}

func (s *cooStore[T]) layout() Layout { return Uncompressed }

func (s *cooStore[T]) nnz() int { return len(s.data) }

func (s *cooStore[T]) at(row, col int) (T, bool) {
	v, ok := s.data[keyOf(s.ordering, row, col)]

	return v, ok
}

// set inserts or overwrites; an insignificant value erases the entry.
func (s *cooStore[T]) set(row, col int, v T, tol float64) error {
	k := keyOf(s.ordering, row, col)
	if !significant(v, tol) {
		if _, ok := s.data[k]; ok {
			delete(s.data, k)
			s.dirty = true
		}

		return nil
	}
	if _, ok := s.data[k]; !ok {
		s.dirty = true
	}
	s.data[k] = v

	return nil
}

// insert stores v under k unless k is already present (first write wins).
// Callers apply the sparsity policy beforehand.
func (s *cooStore[T]) insert(k key, v T) bool {
	if _, ok := s.data[k]; ok {
		return false
	}
	s.data[k] = v
	s.dirty = true

	return true
}

// sorted returns the keys in major-then-minor order.
// The returned slice is owned by the store; do not mutate.
func (s *cooStore[T]) sorted() []key {
	if !s.dirty && len(s.keys) == len(s.data) {
		return s.keys
	}
	s.keys = s.keys[:0]
	for k := range s.data {
		s.keys = append(s.keys, k)
	}
	slices.SortFunc(s.keys, func(a, b key) int {
		if c := cmp.Compare(a.major, b.major); c != 0 {
			return c
		}

		return cmp.Compare(a.minor, b.minor)
	})
	s.dirty = false

	return s.keys
}

func (s *cooStore[T]) each(yield func(Index, T) bool) {
	for _, k := range s.sorted() {
		if !yield(k.index(s.ordering), s.data[k]) {
			return
		}
	}
}

// mulVec is index-driven, hence correct under either ordering.
func (s *cooStore[T]) mulVec(dst, x []T) {
	var idx Index
	for _, k := range s.sorted() {
		idx = k.index(s.ordering)
		dst[idx.Row] += s.data[k] * x[idx.Col]
	}
}

func (s *cooStore[T]) mulTransVec(dst, x []T) {
	var idx Index
	for _, k := range s.sorted() {
		idx = k.index(s.ordering)
		dst[idx.Col] += s.data[k] * x[idx.Row]
	}
}

func (s *cooStore[T]) clone() store[T] {
	out := newCOO[T](s.ordering, len(s.data))
	for k, v := range s.data {
		out.data[k] = v
	}
	out.dirty = true

	return out
}

// SPDX-License-Identifier: MIT

// Package sparse - compressed store (CSR / CSC).
//
// Layout:
//   - values[k]   : k-th stored value in storage order.
//   - minor[k]    : minor index of values[k] (column for CSR, row for CSC).
//   - ptr[m]      : offset of the first entry of major index m; the run of m
//     is [ptr[m], ptr[m+1]). len(ptr) == majorCount+1, ptr[0] == 0,
//     ptr[majorCount] == nnz, non-decreasing. Empty runs have ptr[m] == ptr[m+1].
//   - Within a run, minor indices are strictly increasing (binary-searchable).
//
// Access resolves the run of the major index and searches it for the minor
// index; it never assumes a dense run (offset = ptr + minor).

package sparse

import "slices"

// compressed holds the three parallel arrays shared by CSR and CSC.
type compressed[T Scalar] struct {
	values []T
	minor  []int
	ptr    []int
}

// majors returns the number of major indices described by ptr.
func (c *compressed[T]) majors() int {
	return len(c.ptr) - 1
}

// find locates (major, minor) and returns its slot in values.
// Complexity: O(log k) for a run of length k.
func (c *compressed[T]) find(major, minor int) (int, bool) {
	lo, hi := c.ptr[major], c.ptr[major+1]
	i, ok := slices.BinarySearch(c.minor[lo:hi], minor)

	return lo + i, ok
}

// assign overwrites an existing slot; structure never changes here.
func (c *compressed[T]) assign(major, minor int, v T, tol float64) error {
	slot, ok := c.find(major, minor)
	if !ok || !significant(v, tol) {
		return ErrStructuralWrite
	}
	c.values[slot] = v

	return nil
}

// eachRun yields (major, minor, value) in storage order until yield returns false.
func (c *compressed[T]) eachRun(yield func(major, minor int, v T) bool) {
	var m, k int
	for m = 0; m < c.majors(); m++ {
		for k = c.ptr[m]; k < c.ptr[m+1]; k++ {
			if !yield(m, c.minor[k], c.values[k]) {
				return
			}
		}
	}
}

func (c *compressed[T]) copyArrays() compressed[T] {
	return compressed[T]{
		values: slices.Clone(c.values),
		minor:  slices.Clone(c.minor),
		ptr:    slices.Clone(c.ptr),
	}
}

// csrStore is the CompressedCSR variant: major = row, minor = column.
type csrStore[T Scalar] struct {
	compressed[T]
}

func (s *csrStore[T]) layout() Layout { return CompressedCSR }

func (s *csrStore[T]) nnz() int { return len(s.values) }

func (s *csrStore[T]) at(row, col int) (T, bool) {
	if slot, ok := s.find(row, col); ok {
		return s.values[slot], true
	}
	var zero T

	return zero, false
}

func (s *csrStore[T]) set(row, col int, v T, tol float64) error {
	return s.assign(row, col, v, tol)
}

func (s *csrStore[T]) each(yield func(Index, T) bool) {
	s.eachRun(func(major, minor int, v T) bool {
		return yield(Index{Row: major, Col: minor}, v)
	})
}

// mulVec: for each row i, y[i] += values[k] * x[minor[k]] over the run of i.
func (s *csrStore[T]) mulVec(dst, x []T) {
	var i, k int
	var acc T
	for i = 0; i < s.majors(); i++ {
		acc = dst[i]
		for k = s.ptr[i]; k < s.ptr[i+1]; k++ {
			acc += s.values[k] * x[s.minor[k]]
		}
		dst[i] = acc
	}
}

func (s *csrStore[T]) mulTransVec(dst, x []T) {
	var i, k int
	for i = 0; i < s.majors(); i++ {
		for k = s.ptr[i]; k < s.ptr[i+1]; k++ {
			dst[s.minor[k]] += s.values[k] * x[i]
		}
	}
}

func (s *csrStore[T]) clone() store[T] {
	return &csrStore[T]{compressed: s.copyArrays()}
}

// cscStore is the CompressedCSC variant: major = column, minor = row.
type cscStore[T Scalar] struct {
	compressed[T]
}

func (s *cscStore[T]) layout() Layout { return CompressedCSC }

func (s *cscStore[T]) nnz() int { return len(s.values) }

func (s *cscStore[T]) at(row, col int) (T, bool) {
	if slot, ok := s.find(col, row); ok {
		return s.values[slot], true
	}
	var zero T

	return zero, false
}

func (s *cscStore[T]) set(row, col int, v T, tol float64) error {
	return s.assign(col, row, v, tol)
}

func (s *cscStore[T]) each(yield func(Index, T) bool) {
	s.eachRun(func(major, minor int, v T) bool {
		return yield(Index{Row: minor, Col: major}, v)
	})
}

// mulVec: for each column j, y[minor[k]] += values[k] * x[j] over the run of j.
func (s *cscStore[T]) mulVec(dst, x []T) {
	var j, k int
	var xj T
	for j = 0; j < s.majors(); j++ {
		xj = x[j]
		for k = s.ptr[j]; k < s.ptr[j+1]; k++ {
			dst[s.minor[k]] += s.values[k] * xj
		}
	}
}

func (s *cscStore[T]) mulTransVec(dst, x []T) {
	var j, k int
	var acc T
	for j = 0; j < s.majors(); j++ {
		acc = dst[j]
		for k = s.ptr[j]; k < s.ptr[j+1]; k++ {
			acc += s.values[k] * x[s.minor[k]]
		}
		dst[j] = acc
	}
}

func (s *cscStore[T]) clone() store[T] {
	return &cscStore[T]{compressed: s.copyArrays()}
}

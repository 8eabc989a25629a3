// SPDX-License-Identifier: MIT

// Package sparse - format converter.
//
// Purpose:
//   - Move a Matrix between the coordinate store and the compressed store.
//   - Keep both directions exact: Uncompress(Compress(M)) has the same
//     (row, col, value) set as M, whatever the original insertion order.
//
// State machine:
//
//	Uncompressed --Compress(CSR) [RowMajor]----> CompressedCSR
//	Uncompressed --Compress(CSC) [ColumnMajor]--> CompressedCSC
//	Compressed*  --Uncompress()-----------------> Uncompressed
//
// Every other request is a reported no-op (ErrAlreadyCompressed,
// ErrAlreadyUncompressed) or a rejected transition (ErrFormatOrdering,
// ErrUnknownFormat); the matrix is never left half-converted.

package sparse

// Compress switches the matrix to the compressed layout f.
// Implementation:
//   - Stage 1: refuse when already compressed or when f does not match the ordering.
//   - Stage 2: scan entries in major-then-minor order and emit the arrays.
//   - Stage 3: install the compressed variant; the coordinate store is dropped.
//
// Errors:
//   - ErrAlreadyCompressed (no-op), ErrUnknownFormat, ErrFormatOrdering.
//     All but ErrUnknownFormat wrap ErrInvalidStateTransition.
//
// Complexity:
//   - Time O(nnz·log nnz + majors), Space O(nnz + majors).
func (m *Matrix[T]) Compress(f Format) error {
	coo, ok := m.st.(*cooStore[T])
	if !ok {
		return sparseErrorf(opCompress, ErrAlreadyCompressed)
	}
	if err := validateFormat(f, m.ordering); err != nil {
		return sparseErrorf(opCompress, err)
	}

	c := compressEntries(coo, m.majorCount())
	if f == CSC {
		m.st = &cscStore[T]{compressed: c}
	} else {
		m.st = &csrStore[T]{compressed: c}
	}

	return nil
}

// Uncompress switches the matrix back to the coordinate store.
//
// Errors:
//   - ErrAlreadyUncompressed (no-op).
//
// Complexity:
//   - Time O(nnz + majors), Space O(nnz).
func (m *Matrix[T]) Uncompress() error {
	var c *compressed[T]
	switch s := m.st.(type) {
	case *csrStore[T]:
		c = &s.compressed
	case *cscStore[T]:
		c = &s.compressed
	default:
		return sparseErrorf(opUncompress, ErrAlreadyUncompressed)
	}
	m.st = expandEntries(c, m.ordering)

	return nil
}

// compressEntries emits the compressed arrays of coo for majorCount majors.
// Every major index without entries receives a pointer equal to the
// preceding boundary (an empty run); the final boundary is nnz.
func compressEntries[T Scalar](coo *cooStore[T], majorCount int) compressed[T] {
	keys := coo.sorted()
	c := compressed[T]{
		values: make([]T, 0, len(keys)),
		minor:  make([]int, 0, len(keys)),
		ptr:    make([]int, 0, majorCount+1),
	}

	next := 0 // first major index whose start pointer is not emitted yet
	for _, k := range keys {
		for next <= k.major {
			c.ptr = append(c.ptr, len(c.values))
			next++
		}
		c.values = append(c.values, coo.data[k])
		c.minor = append(c.minor, k.minor)
	}
	for next <= majorCount {
		c.ptr = append(c.ptr, len(c.values))
		next++
	}

	return c
}

// expandEntries rebuilds a coordinate store from compressed arrays.
// The compressed major axis equals the ordering's major axis, so keys map
// one-to-one; the (row, col) swap for CSC happens in key.index.
func expandEntries[T Scalar](c *compressed[T], ord Ordering) *cooStore[T] {
	coo := newCOO[T](ord, len(c.values))
	c.eachRun(func(major, minor int, v T) bool {
		coo.data[key{major: major, minor: minor}] = v

		return true
	})
	coo.dirty = true

	return coo
}

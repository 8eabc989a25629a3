// SPDX-License-Identifier: MIT

// Package sparse - Matrix type, constructors and read-only accessors.
//
// Purpose:
//   - Own the declared shape, the ordering/tolerance policy and the single
//     active storage variant.
//   - Build matrices from a shape, a dense two-dimensional slice or a list of
//     triplets; every constructor applies the same sparsity policy.
//
// AI-Hints:
//   - Build in the coordinate store (any order), then Compress once before
//     bulk traversal; Uncompress again before structural edits.

package sparse

import (
	"fmt"
	"iter"
	"strings"
)

// Matrix is a sparse matrix of T with shape rows×cols.
//   - rows, cols: declared shape, independent of how many entries are stored.
//   - ordering  : key grouping; decides which compressed format is legal.
//   - tol       : sparsity threshold; |v| <= tol is never stored.
//   - strict    : finite-value policy for Set and constructors.
//   - st        : the active storage variant.
//
// A Matrix is not safe for concurrent use.
type Matrix[T Scalar] struct {
	rows, cols int
	ordering   Ordering
	tol        float64
	strict     bool
	st         store[T]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// newMatrix allocates an empty uncompressed matrix with resolved options.
func newMatrix[T Scalar](rows, cols int, o Options, capacity int) *Matrix[T] {
	return &Matrix[T]{
		rows:     rows,
		cols:     cols,
		ordering: o.ordering,
		tol:      o.tol,
		strict:   o.validateNaNInf,
		st:       newCOO[T](o.ordering, capacity),
	}
}

// New returns an empty rows×cols matrix in the Uncompressed layout.
//
// Errors:
//   - ErrBadShape (wraps ErrDimensionMismatch) for negative dimensions.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T Scalar](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, sparseErrorf(opNew, err)
	}

	return newMatrix[T](rows, cols, gatherOptions(opts...), 0), nil
}

// NewFromDense builds a matrix from a dense two-dimensional slice.
// Implementation:
//   - Stage 1: derive shape (rows = len(dense), cols = len(dense[0])).
//   - Stage 2: scan cells in row order, keep |v| > tol, key them per ordering.
//
// Behavior highlights:
//   - The build is aborted on the first ragged row; no partial matrix escapes.
//   - An empty input yields a 0×0 matrix.
//
// Errors:
//   - ErrRaggedRows (wraps ErrDimensionMismatch) for inconsistent row lengths.
//   - ErrNaNInf when the finite-value policy is on and a cell is NaN/±Inf.
//
// Complexity:
//   - Time O(rows*cols), Space O(nnz).
func NewFromDense[T Scalar](dense [][]T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	rows, cols := len(dense), 0
	if rows > 0 {
		cols = len(dense[0])
	}

	m := newMatrix[T](rows, cols, o, 0)
	coo := m.st.(*cooStore[T])

	var i, j int
	for i = 0; i < rows; i++ {
		if len(dense[i]) != cols {
			return nil, sparseErrorf(opFromDense, fmt.Errorf("row %d has %d cells, want %d: %w",
				i, len(dense[i]), cols, ErrRaggedRows))
		}
		for j = 0; j < cols; j++ {
			if err := validateValue(dense[i][j], o.validateNaNInf); err != nil {
				return nil, indexErrorf(opFromDense, i, j, err)
			}
			if significant(dense[i][j], o.tol) {
				coo.insert(keyOf(o.ordering, i, j), dense[i][j])
			}
		}
	}

	return m, nil
}

// NewFromTriplets builds a rows×cols matrix from (row, col, value) triplets.
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: shift indices by the configured base (1 by default), bounds
//     check, drop |v| <= tol silently, insert with the ordering key swap.
//
// Behavior highlights:
//   - Duplicate coordinates: the first occurrence wins.
//   - Input order is irrelevant; storage order is re-established on traversal.
//
// Errors:
//   - ErrBadShape for negative dimensions.
//   - ErrOutOfBounds when a triplet lies outside the declared shape.
//   - ErrNaNInf under the finite-value policy.
//
// Complexity:
//   - Time O(len(ts)), Space O(nnz).
//
// AI-Hints:
//   - Feed parser output directly; pass WithIndexBase(0) for 0-indexed sources.
func NewFromTriplets[T Scalar](rows, cols int, ts []Triplet[T], opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, sparseErrorf(opFromTriplets, err)
	}
	o := gatherOptions(opts...)
	m := newMatrix[T](rows, cols, o, len(ts))
	coo := m.st.(*cooStore[T])

	var row, col int
	for _, t := range ts {
		row, col = t.Row-o.indexBase, t.Col-o.indexBase
		if err := validateIndex(rows, cols, row, col); err != nil {
			return nil, indexErrorf(opFromTriplets, t.Row, t.Col, err)
		}
		if err := validateValue(t.Value, o.validateNaNInf); err != nil {
			return nil, indexErrorf(opFromTriplets, t.Row, t.Col, err)
		}
		if significant(t.Value, o.tol) {
			coo.insert(keyOf(o.ordering, row, col), t.Value)
		}
	}

	return m, nil
}

// Clone returns a deep copy in the same layout.
// Complexity: O(nnz).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := *m
	out.st = m.st.clone()

	return &out
}

// Rows returns the declared number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols().
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries.
func (m *Matrix[T]) NNZ() int { return m.st.nnz() }

// Ordering returns the key ordering.
func (m *Matrix[T]) Ordering() Ordering { return m.ordering }

// Tolerance returns the sparsity threshold in effect.
func (m *Matrix[T]) Tolerance() float64 { return m.tol }

// Layout returns the active storage variant.
func (m *Matrix[T]) Layout() Layout { return m.st.layout() }

// IsCompressed reports whether the compressed store is active.
func (m *Matrix[T]) IsCompressed() bool { return m.st.layout() != Uncompressed }

// Format returns the compressed format and true, or (0, false) when uncompressed.
func (m *Matrix[T]) Format() (Format, bool) {
	switch m.st.layout() {
	case CompressedCSR:
		return CSR, true
	case CompressedCSC:
		return CSC, true
	default:
		return 0, false
	}
}

// majorCount is the number of major indices under the matrix ordering.
func (m *Matrix[T]) majorCount() int {
	if m.ordering == ColumnMajor {
		return m.cols
	}

	return m.rows
}

// All iterates stored entries in storage order (major-then-minor) with
// 0-based coordinates. It works identically in every layout.
func (m *Matrix[T]) All() iter.Seq2[Index, T] {
	return m.st.each
}

// Triplets returns the stored entries, 0-indexed, in storage order.
// Complexity: O(nnz).
func (m *Matrix[T]) Triplets() []Triplet[T] {
	out := make([]Triplet[T], 0, m.st.nnz())
	for idx, v := range m.All() {
		out = append(out, Triplet[T]{Row: idx.Row, Col: idx.Col, Value: v})
	}

	return out
}

// ToDense materializes the matrix as rows slices of cols values.
// Complexity: O(rows*cols + nnz).
func (m *Matrix[T]) ToDense() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = make([]T, m.cols)
	}
	for idx, v := range m.All() {
		out[idx.Row][idx.Col] = v
	}

	return out
}

// CompressedArrays is a read-only copy of the compressed store.
type CompressedArrays[T Scalar] struct {
	Values       []T
	MinorIndex   []int
	MajorPointer []int
}

// Arrays returns a copy of the compressed arrays, or false when uncompressed.
func (m *Matrix[T]) Arrays() (CompressedArrays[T], bool) {
	var c *compressed[T]
	switch s := m.st.(type) {
	case *csrStore[T]:
		c = &s.compressed
	case *cscStore[T]:
		c = &s.compressed
	default:
		return CompressedArrays[T]{}, false
	}
	cp := c.copyArrays()

	return CompressedArrays[T]{Values: cp.values, MinorIndex: cp.minor, MajorPointer: cp.ptr}, true
}

// String lists one "row col: value" line per stored entry in storage order.
// The output is the same before and after compression.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for idx, v := range m.All() {
		fmt.Fprintf(&sb, "%d %d: %v\n", idx.Row, idx.Col, v)
	}

	return sb.String()
}

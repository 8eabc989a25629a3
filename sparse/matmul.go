// SPDX-License-Identifier: MIT

// Package sparse - sparse matrix-matrix product.
//
// Algorithm (Gustavson, row-wise):
//
//	for each major i of L:
//	    for k in run(i):            r = L.minor[k]
//	        for q in run_R(r):      j = R.minor[q]
//	            acc[j] += L.values[k] * R.values[q]
//	    emit acc's touched minors in increasing order, dropping |v| <= tol
//
// With L = A, R = B in CSR this is C = A·B row by row. CSC arrays of X are
// the CSR arrays of Xᵀ and (A·B)ᵀ = Bᵀ·Aᵀ, so CSC×CSC runs the same kernel
// with L = B, R = A and the result arrays are C in CSC.
//
// The accumulator is dense over the minor dimension (values + a marker of
// the last major that touched each slot), so no clearing pass is needed
// between majors; only touched slots are sorted and emitted.

package sparse

import "slices"

// Mul computes the sparse product C = A·B.
// Implementation:
//   - Stage 1: validate operands (same ordering and layout, a.cols == b.rows).
//   - Stage 2: run the Gustavson kernel on CSR (A,B) or CSC (B,A) arrays;
//     uncompressed operands go through temporary compressed views.
//   - Stage 3: wrap the arrays in a Matrix with A's ordering, tolerance and layout.
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleOperands (mixed ordering/layout; wraps
//     ErrInvalidStateTransition), ErrDimensionMismatch.
//
// Determinism:
//   - Fixed traversal order; each output run is sorted by minor index.
//
// Complexity:
//   - Time O(flops + Σ t_i·log t_i) where t_i are touched slots per major,
//     Space O(nnz(C) + minor dimension).
//
// AI-Hints:
//   - Operands are never converted implicitly; compress both to the same
//     format (or keep both uncompressed) before calling.
func Mul[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	out := &Matrix[T]{
		rows:     a.rows,
		cols:     b.cols,
		ordering: a.ordering,
		tol:      a.tol,
		strict:   a.strict,
	}

	switch sa := a.st.(type) {
	case *csrStore[T]:
		sb := b.st.(*csrStore[T])
		out.st = &csrStore[T]{compressed: gustavson(&sa.compressed, &sb.compressed, b.cols, a.tol)}
	case *cscStore[T]:
		sb := b.st.(*cscStore[T])
		out.st = &cscStore[T]{compressed: gustavson(&sb.compressed, &sa.compressed, a.rows, a.tol)}
	case *cooStore[T]:
		sb := b.st.(*cooStore[T])
		ca := compressEntries(sa, a.majorCount())
		cb := compressEntries(sb, b.majorCount())
		var c compressed[T]
		if a.ordering == ColumnMajor {
			c = gustavson(&cb, &ca, a.rows, a.tol)
		} else {
			c = gustavson(&ca, &cb, b.cols, a.tol)
		}
		out.st = expandEntries(&c, a.ordering)
	}

	return out, nil
}

// gustavson multiplies left (L majors × R majors) by right (R majors ×
// minorCount) given both in compressed form with matching inner dimension.
func gustavson[T Scalar](left, right *compressed[T], minorCount int, tol float64) compressed[T] {
	majors := left.majors()
	out := compressed[T]{
		values: make([]T, 0, len(left.values)),
		minor:  make([]int, 0, len(left.values)),
		ptr:    make([]int, 1, majors+1), // ptr[0] = 0
	}

	acc := make([]T, minorCount)
	mark := make([]int, minorCount)
	for j := range mark {
		mark[j] = -1
	}
	touched := make([]int, 0, minorCount)

	var (
		i, k, q, r, j int
		lv            T
	)
	for i = 0; i < majors; i++ {
		touched = touched[:0]
		for k = left.ptr[i]; k < left.ptr[i+1]; k++ {
			lv, r = left.values[k], left.minor[k]
			for q = right.ptr[r]; q < right.ptr[r+1]; q++ {
				j = right.minor[q]
				if mark[j] != i {
					mark[j] = i
					acc[j] = lv * right.values[q]
					touched = append(touched, j)
				} else {
					acc[j] += lv * right.values[q]
				}
			}
		}
		slices.Sort(touched)
		for _, j = range touched {
			if significant(acc[j], tol) {
				out.values = append(out.values, acc[j])
				out.minor = append(out.minor, j)
			}
		}
		out.ptr = append(out.ptr, len(out.values))
	}

	return out
}

// SPDX-License-Identifier: MIT

package sparse

// MulVec computes y = A·x.
// Contract: m non-nil; len(x) == m.Cols().
// Implementation:
//   - Stage 1: validate; on failure no partial result is returned.
//   - Stage 2: dispatch once to the active variant:
//     Uncompressed y[row] += v*x[col] per entry; CSR row runs;
//     CSC column scatter. x is always indexed by the stored index.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Storage-order traversal in every variant, so a coordinate store and its
//     compressed form produce bit-identical results.
//
// Complexity:
//   - Time O(nnz + rows), Space O(rows).
func MulVec[T Scalar](m *Matrix[T], x []T) ([]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	if err := validateVecLen(x, m.cols); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	y := make([]T, m.rows)
	m.st.mulVec(y, x)

	return y, nil
}

// MulTransVec computes y = Aᵀ·x without forming Aᵀ.
// Contract: m non-nil; len(x) == m.Rows(). Result length is m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnz + cols), Space O(cols).
func MulTransVec[T Scalar](m *Matrix[T], x []T) ([]T, error) {
	if err := validateNotNil(m); err != nil {
		return nil, sparseErrorf(opMulTransVec, err)
	}
	if err := validateVecLen(x, m.rows); err != nil {
		return nil, sparseErrorf(opMulTransVec, err)
	}
	y := make([]T, m.cols)
	m.st.mulTransVec(y, x)

	return y, nil
}

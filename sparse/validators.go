// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for shape, index, vector and value checks.
//   - Return plain sentinels tagged with the validator name so call sites
//     can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
func validateNotNil[T Scalar](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateShape rejects negative dimensions. Zero is legal (empty matrix).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("validateShape", ErrBadShape)
	}

	return nil
}

// validateIndex ensures 0 <= row < rows and 0 <= col < cols.
func validateIndex(rows, cols, row, col int) error {
	if row < 0 || row >= rows {
		return validatorErrorf("validateIndex: row", ErrOutOfBounds)
	}
	if col < 0 || col >= cols {
		return validatorErrorf("validateIndex: col", ErrOutOfBounds)
	}

	return nil
}

// validateVecLen ensures len(x) == n.
func validateVecLen[T Scalar](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("validateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateValue rejects NaN always and ±Inf when strict.
func validateValue[T Scalar](v T, strict bool) error {
	mag := magnitude(v)
	if math.IsNaN(mag) || (strict && isNonFinite(mag)) {
		return validatorErrorf("validateValue", ErrNaNInf)
	}

	return nil
}

// validateFormat ensures f is a known format legal under ordering ord.
func validateFormat(f Format, ord Ordering) error {
	if f != CSR && f != CSC {
		return validatorErrorf("validateFormat", ErrUnknownFormat)
	}
	if f.ordering() != ord {
		return validatorErrorf("validateFormat", ErrFormatOrdering)
	}

	return nil
}

// validateMulCompatible: non-nil operands, equal ordering and layout, a.cols == b.rows.
func validateMulCompatible[T Scalar](a, b *Matrix[T]) error {
	if err := validateNotNil(a); err != nil {
		return validatorErrorf("validateMulCompatible", err)
	}
	if err := validateNotNil(b); err != nil {
		return validatorErrorf("validateMulCompatible", err)
	}
	if a.ordering != b.ordering || a.st.layout() != b.st.layout() {
		return validatorErrorf("validateMulCompatible", ErrIncompatibleOperands)
	}
	if a.cols != b.rows {
		return validatorErrorf("validateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

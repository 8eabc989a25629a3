// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Norm computes the requested matrix norm.
// Implementation:
//   - Stage 1: select the reduction by kind.
//   - Stage 2: run it over All(), the layout-independent entry iterator.
//
// Behavior highlights:
//   - NormOne: max over columns of Σ|a_ij|, explicit per-column accumulator.
//   - NormInf: max over rows of Σ|a_ij|, explicit per-row accumulator; it does
//     not rely on entries arriving grouped by row, so any ordering works.
//   - NormFrobenius: sqrt(Σ|a_ij|²), computed with gonum's scaled 2-norm so
//     large magnitudes do not overflow the intermediate sum.
//   - An empty matrix (no rows or no columns) has every norm equal to 0.
//
// Errors:
//   - ErrUnknownNorm for kinds outside the enum.
//
// Complexity:
//   - Time O(nnz + rows + cols), Space O(rows + cols) or O(nnz) for Frobenius.
func (m *Matrix[T]) Norm(kind NormKind) (float64, error) {
	switch kind {
	case NormOne:
		return m.maxAccumulated(m.cols, func(idx Index) int { return idx.Col }), nil
	case NormInf:
		return m.maxAccumulated(m.rows, func(idx Index) int { return idx.Row }), nil
	case NormFrobenius:
		return m.frobenius(), nil
	default:
		return 0, sparseErrorf(opNorm, fmt.Errorf("%v: %w", kind, ErrUnknownNorm))
	}
}

// maxAccumulated sums |v| into size buckets chosen by bucket and returns the
// largest bucket.
func (m *Matrix[T]) maxAccumulated(size int, bucket func(Index) int) float64 {
	if size == 0 {
		return 0
	}
	acc := make([]float64, size)
	for idx, v := range m.All() {
		acc[bucket(idx)] += magnitude(v)
	}

	return floats.Max(acc)
}

func (m *Matrix[T]) frobenius() float64 {
	mags := make([]float64, 0, m.st.nnz())
	for _, v := range m.All() {
		mags = append(mags, magnitude(v))
	}
	if len(mags) == 0 {
		return 0
	}

	return floats.Norm(mags, 2)
}

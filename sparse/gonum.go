// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum materializes a float64 matrix as a gonum *mat.Dense.
// Any layout is accepted; the matrix is not modified.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrBadShape when rows or cols is zero (gonum has no empty Dense).
//
// Complexity:
//   - Time O(rows*cols + nnz), Space O(rows*cols).
func ToGonum(m *Matrix[float64]) (*mat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, sparseErrorf(opToGonum, err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf(opToGonum, fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrBadShape))
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for idx, v := range m.All() {
		d.Set(idx.Row, idx.Col, v)
	}

	return d, nil
}

// FromGonum builds an uncompressed matrix from any gonum mat.Matrix,
// applying the same tolerance and ordering options as NewFromDense.
//
// Errors:
//   - ErrNaNInf under the finite-value policy.
//
// Complexity:
//   - Time O(rows*cols), Space O(nnz).
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix[float64], error) {
	o := gatherOptions(opts...)
	rows, cols := src.Dims()
	m := newMatrix[float64](rows, cols, o, 0)
	coo := m.st.(*cooStore[float64])

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if err := validateValue(v, o.validateNaNInf); err != nil {
				return nil, indexErrorf(opFromGonum, i, j, err)
			}
			if significant(v, o.tol) {
				coo.insert(keyOf(o.ordering, i, j), v)
			}
		}
	}

	return m, nil
}

// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for sparse×sparse products.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var (
	mulLeft = [][]float64{
		{1, 0, 2},
		{0, 3, 0},
	}
	mulRight = [][]float64{
		{0, 1},
		{4, 0},
		{5, 6},
	}
	mulWant = [][]float64{
		{10, 13},
		{12, 0},
	}
)

// TestMulSmall checks a 2×3 by 3×2 product in every layout pairing.
func TestMulSmall(t *testing.T) {
	for _, ord := range []sparse.Ordering{sparse.RowMajor, sparse.ColumnMajor} {
		for _, compress := range []bool{false, true} {
			t.Run(fmt.Sprintf("%v/compressed=%v", ord, compress), func(t *testing.T) {
				a := mustFromDense(t, mulLeft, sparse.WithOrdering(ord))
				b := mustFromDense(t, mulRight, sparse.WithOrdering(ord))
				if compress {
					require.NoError(t, a.Compress(formatFor(ord)))
					require.NoError(t, b.Compress(formatFor(ord)))
				}

				c, err := sparse.Mul(a, b)
				require.NoError(t, err)
				require.Equal(t, a.Layout(), c.Layout())
				require.Equal(t, ord, c.Ordering())
				r, cols := c.Shape()
				require.Equal(t, 2, r)
				require.Equal(t, 2, cols)
				require.Equal(t, 3, c.NNZ())
				require.Equal(t, mulWant, c.ToDense())
			})
		}
	}
}

// TestMulCompressedArrays verifies the result arrays are well formed.
func TestMulCompressedArrays(t *testing.T) {
	a := mustCompressed(t, mulLeft, sparse.RowMajor)
	b := mustCompressed(t, mulRight, sparse.RowMajor)
	c, err := sparse.Mul(a, b)
	require.NoError(t, err)

	arr, ok := c.Arrays()
	require.True(t, ok)
	require.Equal(t, []float64{10, 13, 12}, arr.Values)
	require.Equal(t, []int{0, 1, 0}, arr.MinorIndex)
	require.Equal(t, []int{0, 2, 3}, arr.MajorPointer)

	a = mustCompressed(t, mulLeft, sparse.ColumnMajor)
	b = mustCompressed(t, mulRight, sparse.ColumnMajor)
	c, err = sparse.Mul(a, b)
	require.NoError(t, err)

	arr, ok = c.Arrays()
	require.True(t, ok)
	require.Equal(t, []float64{10, 12, 13}, arr.Values)
	require.Equal(t, []int{0, 1, 0}, arr.MinorIndex)
	require.Equal(t, []int{0, 2, 3}, arr.MajorPointer)
}

// TestMulCancellation drops entries that sum to zero.
func TestMulCancellation(t *testing.T) {
	a := mustCompressed(t, [][]float64{{1, 1}}, sparse.RowMajor)
	b := mustCompressed(t, [][]float64{{1}, {-1}}, sparse.RowMajor)
	c, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.Zero(t, c.NNZ())

	arr, ok := c.Arrays()
	require.True(t, ok)
	require.Equal(t, []int{0, 0}, arr.MajorPointer)
}

// TestMulMatchesGonum compares random products against gonum's dense Mul.
func TestMulMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 6; trial++ {
		n, k, p := 1+rng.Intn(15), 1+rng.Intn(15), 1+rng.Intn(15)
		left, right := randomDense(rng, n, k, 0.3), randomDense(rng, k, p, 0.3)

		var want mat.Dense
		want.Mul(mat.NewDense(n, k, flatten(left)), mat.NewDense(k, p, flatten(right)))

		for _, ord := range []sparse.Ordering{sparse.RowMajor, sparse.ColumnMajor} {
			a := mustCompressed(t, left, ord)
			b := mustCompressed(t, right, ord)
			c, err := sparse.Mul(a, b)
			require.NoError(t, err)

			got := mat.NewDense(n, p, flatten(c.ToDense()))
			require.Truef(t, mat.EqualApprox(got, &want, 1e-10), "trial %d %v", trial, ord)
		}
	}
}

// TestMulErrors covers shape and layout mismatches and nil operands.
func TestMulErrors(t *testing.T) {
	a := mustCompressed(t, mulLeft, sparse.RowMajor)

	_, err := sparse.Mul(a, a) // 2×3 by 2×3
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	plain := mustFromDense(t, mulRight)
	_, err = sparse.Mul(a, plain)
	require.ErrorIs(t, err, sparse.ErrIncompatibleOperands)
	require.ErrorIs(t, err, sparse.ErrInvalidStateTransition)

	colMajor := mustCompressed(t, mulRight, sparse.ColumnMajor)
	_, err = sparse.Mul(a, colMajor)
	require.ErrorIs(t, err, sparse.ErrIncompatibleOperands)

	_, err = sparse.Mul(nil, a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

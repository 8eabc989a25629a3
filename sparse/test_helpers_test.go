// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the engine tests.
//   - Random sparse fillers seeded explicitly so failures are reproducible.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// scenarioDense is a 4×4 matrix with an empty third row.
var scenarioDense = [][]float64{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{0, 0, 0, 0},
	{9, 10, 11, 12},
}

// formatFor returns the compressed format legal under ord.
func formatFor(ord sparse.Ordering) sparse.Format {
	if ord == sparse.ColumnMajor {
		return sparse.CSC
	}

	return sparse.CSR
}

// mustFromDense builds a matrix or fails the test.
func mustFromDense(tb testing.TB, dense [][]float64, opts ...sparse.Option) *sparse.Matrix[float64] {
	tb.Helper()
	m, err := sparse.NewFromDense(dense, opts...)
	require.NoError(tb, err)

	return m
}

// mustCompressed builds a matrix with ordering ord and compresses it to the
// matching format.
func mustCompressed(tb testing.TB, dense [][]float64, ord sparse.Ordering) *sparse.Matrix[float64] {
	tb.Helper()
	m := mustFromDense(tb, dense, sparse.WithOrdering(ord))
	require.NoError(tb, m.Compress(formatFor(ord)))

	return m
}

// randomDense returns an r×c slice where roughly density of the cells hold
// values in [-5, 5); the rest are exact zeros.
func randomDense(rng *rand.Rand, r, c int, density float64) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if rng.Float64() < density {
				out[i][j] = rng.Float64()*10 - 5
			}
		}
	}

	return out
}

// shuffledTriplets returns the non-zero cells of dense as 1-indexed triplets
// in random order.
func shuffledTriplets(rng *rand.Rand, dense [][]float64) []sparse.Triplet[float64] {
	var ts []sparse.Triplet[float64]
	for i, row := range dense {
		for j, v := range row {
			if v != 0 {
				ts = append(ts, sparse.Triplet[float64]{Row: i + 1, Col: j + 1, Value: v})
			}
		}
	}
	rng.Shuffle(len(ts), func(a, b int) { ts[a], ts[b] = ts[b], ts[a] })

	return ts
}

// tripletSet indexes 0-based triplets by coordinate for order-free comparison.
func tripletSet(ts []sparse.Triplet[float64]) map[sparse.Index]float64 {
	out := make(map[sparse.Index]float64, len(ts))
	for _, t := range ts {
		out[sparse.Index{Row: t.Row, Col: t.Col}] = t.Value
	}

	return out
}

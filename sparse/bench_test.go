// SPDX-License-Identifier: MIT
// Package sparse_test provides benchmarks for the sparse engine, using
// deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{256, 1024, 4096}

// benchDensity is the fraction of stored cells.
const benchDensity = 0.01

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.Matrix[float64]
	sinkV []float64
	sinkF float64
	sinkE error
)

// benchMatrix builds an n×n matrix with about benchDensity*n*n entries.
func benchMatrix(b *testing.B, n int, ord sparse.Ordering, seed int64) *sparse.Matrix[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	count := int(benchDensity * float64(n) * float64(n))
	ts := make([]sparse.Triplet[float64], count)
	for i := range ts {
		ts[i] = sparse.Triplet[float64]{Row: rng.Intn(n), Col: rng.Intn(n), Value: rng.Float64() + 0.5}
	}
	m, err := sparse.NewFromTriplets(n, n, ts, sparse.WithOrdering(ord), sparse.WithIndexBase(0))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkCompress(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := benchMatrix(b, n, sparse.RowMajor, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m := src.Clone()
				sinkE = m.Compress(sparse.CSR)
				sinkM = m
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		x := make([]float64, n)
		for i := range x {
			x[i] = 1
		}
		for _, ord := range []sparse.Ordering{sparse.RowMajor, sparse.ColumnMajor} {
			b.Run(fmt.Sprintf("n=%d/%v", n, ord), func(b *testing.B) {
				m := benchMatrix(b, n, ord, 42)
				if err := m.Compress(formatFor(ord)); err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					y, err := sparse.MulVec(m, x)
					if err != nil {
						b.Fatal(err)
					}
					sinkV = y
				}
			})
		}
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			left := benchMatrix(b, n, sparse.RowMajor, 11)
			right := benchMatrix(b, n, sparse.RowMajor, 22)
			if err := left.Compress(sparse.CSR); err != nil {
				b.Fatal(err)
			}
			if err := right.Compress(sparse.CSR); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := sparse.Mul(left, right)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = c
			}
		})
	}
}

func BenchmarkNormFrobenius(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMatrix(b, n, sparse.RowMajor, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.Norm(sparse.NormFrobenius)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

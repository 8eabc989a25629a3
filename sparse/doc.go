// SPDX-License-Identifier: MIT

// Package sparse is a sparse-matrix engine with two structural representations
// and the arithmetic that runs over both.
//
// 🚀 What is in the box?
//
//	A Matrix[T] lives in exactly one of three layouts at a time:
//	  • Uncompressed   : coordinate store keyed by (row, col); cheap random
//	                     insertion and mutation, any insertion order.
//	  • CompressedCSR  : values / minor indices / major pointers grouped by row.
//	  • CompressedCSC  : the same three arrays grouped by column.
//
//	Compress(CSR|CSC) and Uncompress() move a matrix between the coordinate
//	store and the compressed store. Both directions are exact: no value is
//	created, lost or reordered outside the storage order.
//
// ✨ Key features:
//   - Sparsity policy: only |v| > tolerance is ever stored (WithTolerance).
//   - Ordering policy: RowMajor pairs with CSR, ColumnMajor with CSC; any
//     other combination is rejected with ErrFormatOrdering.
//   - Norms (one, infinity, Frobenius) computed identically in every layout.
//   - MulVec / MulTransVec over every layout, indexing x by stored minor index.
//   - Mul: Gustavson row-wise sparse product (CSR×CSR, CSC×CSC via transpose).
//   - Typed sentinel errors; no operation panics on user input.
//
// ⚙️ Usage:
//
//	m, err := sparse.NewFromDense([][]float64{
//		{1, 0, 2},
//		{0, 3, 0},
//	})
//	if err != nil { ... }
//	_ = m.Compress(sparse.CSR)
//	y, err := sparse.MulVec(m, []float64{1, 1, 1}) // [3 3]
//	n1, _ := m.Norm(sparse.NormOne)                // 3
//
// Concurrency:
//
//	A Matrix is exclusively owned. The engine performs no locking; concurrent
//	mutation (including Compress/Uncompress) must be serialized by the caller.
//
// Performance:
//
//   - At/Set: O(1) expected uncompressed, O(log k) compressed (k = run length).
//   - Compress: O(nnz·log nnz) (sorted scan); Uncompress: O(nnz).
//   - Norms and MulVec: O(nnz) plus O(rows+cols) accumulators.
//   - Mul: O(flops + nnz(C)·log) with an O(n) dense accumulator per call.
package sparse

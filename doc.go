// Package lvsparse is an in-memory engine for sparse matrices: build them
// in any order, compress them for fast traversal, and run norms and
// products without ever materializing the zeros.
//
// 🚀 What is lvsparse?
//
//	A small, generic library (float32/64, complex64/128) that brings together:
//		• Coordinate store: random insertion, overwrite and erase
//		• Compressed stores: CSR and CSC with explicit state transitions
//		• Norms: one, infinity, Frobenius
//		• Products: matrix-vector, transposed matrix-vector, Gustavson sparse×sparse
//		• Triplet files: a memory-mapped loader with per-line error reports
//
// Everything is organized under two packages and one command:
//
//	sparse/          : Matrix[T], layouts, conversions, arithmetic, gonum interop
//	mmio/            : "rows cols [nnz]" + "row col value" reader, loader and writer
//	cmd/sparsectl/   : console driver: load, compress, print norms and A·1
//	examples/        : a CG solve of a 1-D Poisson system on a CSR matrix
//
// Quick ASCII example:
//
//	  [1 2 3 4]        values [1 … 12]
//	  [5 6 7 8]   →    minor  [0 1 2 3 0 1 2 3 0 1 2 3]
//	  [0 0 0 0]        ptr    [0 4 8 8 12]
//	  [9 … 12 ]
//
//	go get github.com/katalvlaran/lvsparse/sparse
package lvsparse

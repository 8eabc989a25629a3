// SPDX-License-Identifier: MIT

// Package sparse - storage variants.
//
// Purpose:
//   - Model the closed set {Uncompressed, CompressedCSR, CompressedCSC} as one
//     interface with exactly one implementation per variant.
//   - Public operations select the variant once per call (m.st) and delegate;
//     no operation re-checks the layout inline.
//
// Contract shared by all variants:
//   - (row, col) arguments are already bounds-checked by the Matrix surface.
//   - each yields entries in storage order (major-then-minor), which keeps
//     floating-point accumulation order identical between a coordinate store
//     and its compressed counterpart.

package sparse

// store is the per-layout implementation of every Matrix operation.
type store[T Scalar] interface {
	// layout names the active variant.
	layout() Layout

	// nnz is the number of stored entries.
	nnz() int

	// at returns the stored value and whether (row, col) is stored.
	at(row, col int) (T, bool)

	// set writes v at (row, col) under tolerance tol.
	set(row, col int, v T, tol float64) error

	// each yields every stored entry in storage order until yield returns false.
	each(yield func(Index, T) bool)

	// mulVec accumulates A·x into dst (len(dst) == rows, len(x) == cols).
	mulVec(dst, x []T)

	// mulTransVec accumulates Aᵀ·x into dst (len(dst) == cols, len(x) == rows).
	mulTransVec(dst, x []T)

	// clone returns an independent deep copy.
	clone() store[T]
}

// Compile-time conformance of the three variants.
var (
	_ store[float64] = (*cooStore[float64])(nil)
	_ store[float64] = (*csrStore[float64])(nil)
	_ store[float64] = (*cscStore[float64])(nil)
)

// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by stores, converter and kernels.
// This file contains ONLY domain-facing types (element constraint, enums,
// coordinates). Errors and options live in errors.go and options.go.
package sparse

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the element constraint of a Matrix.
// Every member supports addition, multiplication and a magnitude
// (absolute value for reals, modulus for complex numbers).
type Scalar interface {
	constraints.Float | constraints.Complex
}

// Ordering declares how (row, col) pairs are grouped and sorted, and which
// compressed format is legal for the matrix.
type Ordering int

const (
	// RowMajor groups entries by row first; legal with CSR.
	RowMajor Ordering = iota

	// ColumnMajor groups entries by column first; legal with CSC.
	ColumnMajor
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Format names a compressed layout.
type Format int

const (
	// CSR is compressed sparse row: major = row, minor = column.
	CSR Format = iota

	// CSC is compressed sparse column: major = column, minor = row.
	CSC
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case CSR:
		return "CSR"
	case CSC:
		return "CSC"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ordering returns the only Ordering under which f is legal.
func (f Format) ordering() Ordering {
	if f == CSC {
		return ColumnMajor
	}

	return RowMajor
}

// Layout is the closed set of storage variants a Matrix can be in.
// Exactly one variant is active at any time.
type Layout int

const (
	// Uncompressed: the coordinate store is active.
	Uncompressed Layout = iota

	// CompressedCSR: the compressed store is active, grouped by row.
	CompressedCSR

	// CompressedCSC: the compressed store is active, grouped by column.
	CompressedCSC
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case Uncompressed:
		return "Uncompressed"
	case CompressedCSR:
		return "CompressedCSR"
	case CompressedCSC:
		return "CompressedCSC"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// NormKind selects the reduction computed by Matrix.Norm.
type NormKind int

const (
	// NormOne is the maximum absolute column sum.
	NormOne NormKind = iota

	// NormInf is the maximum absolute row sum.
	NormInf

	// NormFrobenius is the square root of the sum of squared magnitudes.
	NormFrobenius
)

// String implements fmt.Stringer.
func (k NormKind) String() string {
	switch k {
	case NormOne:
		return "One"
	case NormInf:
		return "Infinity"
	case NormFrobenius:
		return "Frobenius"
	default:
		return fmt.Sprintf("NormKind(%d)", int(k))
	}
}

// Index is a 0-based (row, col) coordinate.
type Index struct {
	Row int
	Col int
}

// Triplet is one (row, col, value) entry.
// Index base depends on context: NewFromTriplets reads them with the
// configured base (1 by default), Matrix.Triplets returns them 0-based.
type Triplet[T Scalar] struct {
	Row   int
	Col   int
	Value T
}

// key is the internal (major, minor) coordinate. For RowMajor major=row,
// for ColumnMajor major=col; this is the ordering-dependent key swap.
type key struct {
	major int
	minor int
}

// keyOf maps a (row, col) coordinate into storage order.
func keyOf(o Ordering, row, col int) key {
	if o == ColumnMajor {
		return key{major: col, minor: row}
	}

	return key{major: row, minor: col}
}

// index maps a storage key back to (row, col).
func (k key) index(o Ordering) Index {
	if o == ColumnMajor {
		return Index{Row: k.minor, Col: k.major}
	}

	return Index{Row: k.major, Col: k.minor}
}

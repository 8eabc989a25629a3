// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every public operation returns one of these sentinels, possibly wrapped with
// an operation tag; callers match them with errors.Is. No operation panics on
// user-triggered error conditions.

package sparse

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Every other sentinel wraps exactly one of them, so
// errors.Is(err, ErrInvalidStateTransition) holds for ErrAlreadyCompressed too.
var (
	// ErrDimensionMismatch: ragged dense rows, vector length or operand shape mismatch.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfBounds: an index exceeds the declared shape.
	ErrOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrInvalidStateTransition: the requested operation is illegal in the current layout.
	ErrInvalidStateTransition = errors.New("sparse: invalid state transition")

	// ErrIO: file or stream level failures (open, map, malformed content).
	ErrIO = errors.New("sparse: i/o error")
)

// State-machine and policy sentinels.
var (
	// ErrAlreadyCompressed is returned by Compress on a compressed matrix (no-op).
	ErrAlreadyCompressed = fmt.Errorf("%w: already compressed", ErrInvalidStateTransition)

	// ErrAlreadyUncompressed is returned by Uncompress on an uncompressed matrix (no-op).
	ErrAlreadyUncompressed = fmt.Errorf("%w: already uncompressed", ErrInvalidStateTransition)

	// ErrFormatOrdering: CSR requested on ColumnMajor or CSC on RowMajor.
	ErrFormatOrdering = fmt.Errorf("%w: format does not match ordering", ErrInvalidStateTransition)

	// ErrStructuralWrite: a compressed matrix cannot gain or lose a stored entry.
	ErrStructuralWrite = fmt.Errorf("%w: structural write on compressed matrix", ErrInvalidStateTransition)

	// ErrResizeCompressed: shape is frozen while compressed.
	ErrResizeCompressed = fmt.Errorf("%w: cannot resize compressed matrix", ErrInvalidStateTransition)

	// ErrIncompatibleOperands: Mul operands differ in ordering or layout.
	ErrIncompatibleOperands = fmt.Errorf("%w: operands differ in ordering or layout", ErrInvalidStateTransition)

	// ErrRaggedRows: dense input rows have inconsistent lengths.
	ErrRaggedRows = fmt.Errorf("%w: ragged dense rows", ErrDimensionMismatch)

	// ErrBadShape: negative dimensions were requested.
	ErrBadShape = fmt.Errorf("%w: negative shape", ErrDimensionMismatch)
)

// Argument sentinels that do not belong to a state transition.
var (
	// ErrNilMatrix indicates that a nil *Matrix was passed.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUnknownFormat indicates a Format value outside {CSR, CSC}.
	ErrUnknownFormat = errors.New("sparse: unknown compression format")

	// ErrUnknownNorm indicates a NormKind value outside {NormOne, NormInf, NormFrobenius}.
	ErrUnknownNorm = errors.New("sparse: unknown norm kind")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)

// Operation tags for uniform error wrapping.
const (
	opNew          = "New"
	opFromDense    = "NewFromDense"
	opFromTriplets = "NewFromTriplets"
	opAt           = "At"
	opSet          = "Set"
	opResize       = "Resize"
	opCompress     = "Compress"
	opUncompress   = "Uncompress"
	opNorm         = "Norm"
	opMulVec       = "MulVec"
	opMulTransVec  = "MulTransVec"
	opMul          = "Mul"
	opFromGonum    = "FromGonum"
	opToGonum      = "ToGonum"
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with an operation tag and the offending coordinates.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}

// SPDX-License-Identifier: MIT
// Package mmio: sentinel error set. Every sentinel wraps sparse.ErrIO or
// sparse.ErrOutOfBounds so callers can match either level with errors.Is.

package mmio

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

var (
	// ErrBadHeader: the first non-comment line is missing or is not "rows cols [nnz]".
	ErrBadHeader = fmt.Errorf("%w: mmio: bad or missing header", sparse.ErrIO)

	// ErrMalformedLine: an entry line is not "row col value".
	ErrMalformedLine = fmt.Errorf("%w: mmio: malformed entry line", sparse.ErrIO)

	// ErrEntryOutOfRange: an entry lies outside the header shape.
	ErrEntryOutOfRange = fmt.Errorf("%w: mmio: entry outside declared shape", sparse.ErrOutOfBounds)

	// ErrOpen: the file could not be opened, inspected or mapped.
	ErrOpen = fmt.Errorf("%w: mmio: cannot open file", sparse.ErrIO)
)

// LineError describes one skipped entry line.
type LineError struct {
	Line int    // 1-based line number in the input
	Text string // raw line content
	Err  error  // ErrMalformedLine or ErrEntryOutOfRange, possibly wrapped
}

// Error implements error.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e LineError) Unwrap() error { return e.Err }

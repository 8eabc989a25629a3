// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// At returns the value stored at (row, col), or zero when nothing is stored.
// Implementation:
//   - Stage 1: bounds check against the declared shape.
//   - Stage 2: delegate to the active variant (map lookup or binary search
//     within the major run).
//
// Behavior highlights:
//   - Out-of-range access is non-fatal: the zero value is returned together
//     with ErrOutOfBounds.
//
// Complexity:
//   - O(1) expected uncompressed; O(log k) compressed for a run of length k.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := validateIndex(m.rows, m.cols, row, col); err != nil {
		return zero, indexErrorf(opAt, row, col, err)
	}
	v, _ := m.st.at(row, col)

	return v, nil
}

// Set writes v at (row, col).
// Implementation:
//   - Stage 1: bounds check and finite-value policy; on failure nothing is written.
//   - Stage 2: delegate to the active variant.
//
// Behavior highlights:
//   - Uncompressed: inserts or overwrites; |v| <= tol erases the entry.
//   - Compressed: only overwrites an existing entry with a significant value.
//     Adding or removing a stored entry fails with ErrStructuralWrite;
//     Uncompress first.
//
// Errors:
//   - ErrOutOfBounds, ErrStructuralWrite.
//   - ErrNaNInf for NaN under any policy, and for ±Inf under the default one.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := validateIndex(m.rows, m.cols, row, col); err != nil {
		return indexErrorf(opSet, row, col, err)
	}
	if err := validateValue(v, m.strict); err != nil {
		return indexErrorf(opSet, row, col, err)
	}
	if err := m.st.set(row, col, v, m.tol); err != nil {
		return indexErrorf(opSet, row, col, err)
	}

	return nil
}

// Resize changes the declared shape of an uncompressed matrix.
//
// Errors:
//   - ErrResizeCompressed while compressed.
//   - ErrBadShape for negative dimensions.
//   - ErrOutOfBounds when a stored entry would fall outside the new shape;
//     the matrix is left unchanged.
func (m *Matrix[T]) Resize(rows, cols int) error {
	if m.IsCompressed() {
		return sparseErrorf(opResize, ErrResizeCompressed)
	}
	if err := validateShape(rows, cols); err != nil {
		return sparseErrorf(opResize, err)
	}
	for idx := range m.All() {
		if idx.Row >= rows || idx.Col >= cols {
			return sparseErrorf(opResize, fmt.Errorf("entry (%d,%d) outside %dx%d: %w",
				idx.Row, idx.Col, rows, cols, ErrOutOfBounds))
		}
	}
	m.rows, m.cols = rows, cols

	return nil
}

// SPDX-License-Identifier: MIT

// Package mmio reads and writes sparse matrices in the coordinate triplet
// text format (the Matrix Market "coordinate real" flavour).
//
// 🚀 Format:
//
//	% comment lines start with '%' and are skipped
//	4 4 5            <- rows cols [nnz]   (nnz is optional and only informative)
//	1 1 1.0          <- row col value     (1-indexed)
//	2 2 2.0
//
// ✨ Key features:
//   - Read parses any io.Reader; malformed or out-of-range entry lines are
//     collected in a Report and skipped instead of aborting the load.
//   - LoadFile memory-maps the file read-only (github.com/edsrzf/mmap-go) for
//     the duration of the parse; the mapping and the file handle are released
//     on every exit path.
//   - Write emits a file that Read accepts, entries in storage order.
//   - WithProgress reports the number of parsed lines while loading.
//
// ⚙️ Usage:
//
//	m, report, err := mmio.LoadFile("A.mtx",
//		mmio.WithMatrixOptions(sparse.WithOrdering(sparse.ColumnMajor)))
//	if err != nil { ... }
//	for _, le := range report.Skipped { fmt.Println(le) }
//
// Entries with |value| <= tolerance are dropped silently by the matrix
// constructor, consistent with the sparse package's sparsity policy. NaN
// values, and ±Inf under the default finite-value policy, are skipped and
// reported like any other malformed line.
package mmio

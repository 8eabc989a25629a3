// SPDX-License-Identifier: MIT

package mmio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/lvsparse/sparse"
)

// LoadFile reads a triplet file into an uncompressed float64 matrix.
// Implementation:
//   - Stage 1: open the file and map it read-only; zero-length files are
//     parsed without a mapping.
//   - Stage 2: Read the mapped bytes, then build the matrix with
//     sparse.NewFromTriplets (1-indexed, user sparse options applied).
//   - Stage 3: unmap and close on every exit path, parse failure included.
//
// Returns:
//   - the matrix, and the parse Report (skipped lines) when parsing succeeded.
//
// Errors:
//   - ErrOpen (wraps sparse.ErrIO) joined with the OS error.
//   - ErrBadHeader and read errors from Read.
//   - Constructor errors from sparse (e.g. ErrNaNInf under the default policy).
//
// Complexity:
//   - Time O(file size), Space O(nnz); the file content is never copied.
func LoadFile(path string, opts ...Option) (m *sparse.Matrix[float64], report *Report, err error) {
	o := gatherOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	var src io.Reader = bytes.NewReader(nil)
	if info.Size() > 0 {
		region, mapErr := mmap.Map(f, mmap.RDONLY, 0)
		if mapErr != nil {
			return nil, nil, fmt.Errorf("%w: map: %w", ErrOpen, mapErr)
		}
		defer func() {
			if unmapErr := region.Unmap(); unmapErr != nil && err == nil {
				m, report, err = nil, nil, fmt.Errorf("%w: unmap: %w", ErrOpen, unmapErr)
			}
		}()
		src = bytes.NewReader(region)
	}

	data, err := Read(src, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	matrixOpts := append(append([]sparse.Option(nil), o.matrixOpts...), sparse.WithIndexBase(1))
	m, err = sparse.NewFromTriplets(data.Header.Rows, data.Header.Cols, data.Entries, matrixOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return m, &data.Report, nil
}

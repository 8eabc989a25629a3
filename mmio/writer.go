// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Banner is the first line written by Write. Read treats it as a comment.
const Banner = "%%MatrixMarket matrix coordinate real general"

// Write emits m in the triplet format: banner, "rows cols nnz" header and one
// 1-indexed "row col value" line per stored entry in storage order.
// Values use the shortest representation that round-trips through Read.
//
// Errors:
//   - sparse.ErrNilMatrix; sparse.ErrIO wrapping writer failures.
func Write(w io.Writer, m *sparse.Matrix[float64]) error {
	if m == nil {
		return fmt.Errorf("Write: %w", sparse.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Banner)
	fmt.Fprintf(bw, "%d %d %d\n", m.Rows(), m.Cols(), m.NNZ())
	for idx, v := range m.All() {
		fmt.Fprintf(bw, "%d %d %s\n", idx.Row+1, idx.Col+1, strconv.FormatFloat(v, 'g', -1, 64))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: write: %w", sparse.ErrIO, err)
	}

	return nil
}

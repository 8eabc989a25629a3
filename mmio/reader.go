// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
)

const (
	commentPrefix = "%"
	maxLineBytes  = 1 << 20 // longest accepted input line
	headerMinCols = 2       // rows cols
	headerMaxCols = 3       // rows cols nnz
	entryCols     = 3       // row col value
)

// Header is the parsed "rows cols [nnz]" line.
type Header struct {
	Rows   int
	Cols   int
	NNZ    int  // declared entry count; informative only
	HasNNZ bool // whether NNZ was present
}

// Report lists what the parser skipped.
type Report struct {
	Lines   int         // total input lines seen
	Entries int         // entry lines accepted
	Skipped []LineError // entry lines rejected, in input order
}

// Data is the result of Read: the header, the accepted 1-indexed entries and
// the report of skipped lines.
type Data struct {
	Header  Header
	Entries []sparse.Triplet[float64]
	Report  Report
}

// Read parses the triplet format from r.
// Implementation:
//   - Stage 1: skip blank and '%' lines, parse the header.
//   - Stage 2: parse each following line as "row col value" (1-indexed);
//     malformed or out-of-range lines are recorded in Data.Report and skipped.
//     NaN values are always skipped; ±Inf values are skipped unless the
//     forwarded matrix options relax the finite-value policy.
//
// Errors:
//   - ErrBadHeader (fatal): no header, a header that is not 2-3 non-negative
//     ints, or a dimension above the configured maximum.
//   - sparse.ErrIO wrapping the underlying reader error.
//
// Complexity:
//   - Time O(input), Space O(entries).
func Read(r io.Reader, opts ...Option) (*Data, error) {
	o := gatherOptions(opts...)
	strict := sparse.NewOptions(o.matrixOpts...).ValidateNaNInf()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	var (
		data      = &Data{}
		seenHead  bool
		line      string
		lineNo    int
		entry     sparse.Triplet[float64]
		entryErr  error
		headerErr error
	)
	for sc.Scan() {
		lineNo++
		if o.progress != nil && lineNo%o.progressEvery == 0 {
			o.progress(lineNo)
		}
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if !seenHead {
			if data.Header, headerErr = parseHeader(line, o.maxDimension); headerErr != nil {
				return nil, fmt.Errorf("line %d %q: %w", lineNo, line, headerErr)
			}
			seenHead = true
			continue
		}
		if entry, entryErr = parseEntry(line, data.Header, strict); entryErr != nil {
			data.Report.Skipped = append(data.Report.Skipped, LineError{Line: lineNo, Text: line, Err: entryErr})
			continue
		}
		data.Entries = append(data.Entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read: %w", sparse.ErrIO, err)
	}
	if !seenHead {
		return nil, ErrBadHeader
	}
	if o.progress != nil {
		o.progress(lineNo)
	}
	data.Report.Lines = lineNo
	data.Report.Entries = len(data.Entries)

	return data, nil
}

// parseHeader parses "rows cols [nnz]".
func parseHeader(line string, maxDim int) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) < headerMinCols || len(fields) > headerMaxCols {
		return Header{}, ErrBadHeader
	}
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return Header{}, ErrBadHeader
		}
		vals[i] = v
	}
	if vals[0] > maxDim || vals[1] > maxDim {
		return Header{}, fmt.Errorf("%dx%d exceeds %d: %w", vals[0], vals[1], maxDim, ErrBadHeader)
	}
	h := Header{Rows: vals[0], Cols: vals[1]}
	if len(vals) == headerMaxCols {
		h.NNZ, h.HasNNZ = vals[2], true
	}

	return h, nil
}

// parseEntry parses "row col value" and checks 1 <= row <= Rows, 1 <= col <= Cols.
func parseEntry(line string, h Header, strict bool) (sparse.Triplet[float64], error) {
	var t sparse.Triplet[float64]
	fields := strings.Fields(line)
	if len(fields) != entryCols {
		return t, fmt.Errorf("want %d fields, got %d: %w", entryCols, len(fields), ErrMalformedLine)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return t, fmt.Errorf("row: %w", ErrMalformedLine)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return t, fmt.Errorf("col: %w", ErrMalformedLine)
	}
	val, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return t, fmt.Errorf("value: %w", ErrMalformedLine)
	}
	if math.IsNaN(val) || (strict && math.IsInf(val, 0)) {
		return t, fmt.Errorf("value %s not finite: %w", fields[2], ErrMalformedLine)
	}
	if row < 1 || row > h.Rows || col < 1 || col > h.Cols {
		return t, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, h.Rows, h.Cols, ErrEntryOutOfRange)
	}
	t.Row, t.Col, t.Value = row, col, val

	return t, nil
}

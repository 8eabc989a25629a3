// SPDX-License-Identifier: MIT
// Package mmio_test contains unit tests for the triplet-file parser.
package mmio_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/mmio"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestReadHeaderAndEntries parses a header with nnz and two entries.
func TestReadHeaderAndEntries(t *testing.T) {
	data, err := mmio.Read(strings.NewReader("4 4 5\n1 1 1.0\n2 2 2.0\n"))
	require.NoError(t, err)
	require.Equal(t, mmio.Header{Rows: 4, Cols: 4, NNZ: 5, HasNNZ: true}, data.Header)
	require.Equal(t, []sparse.Triplet[float64]{
		{Row: 1, Col: 1, Value: 1.0},
		{Row: 2, Col: 2, Value: 2.0},
	}, data.Entries)
	require.Equal(t, 3, data.Report.Lines)
	require.Equal(t, 2, data.Report.Entries)
	require.Empty(t, data.Report.Skipped)
}

// TestReadCommentsAndBlankLines ignores banner, comments and blank lines.
func TestReadCommentsAndBlankLines(t *testing.T) {
	src := mmio.Banner + "\n% generated\n\n3 2\n  \n% mid comment\n3 2 -4.5e-1\n"
	data, err := mmio.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, mmio.Header{Rows: 3, Cols: 2}, data.Header)
	require.Equal(t, []sparse.Triplet[float64]{{Row: 3, Col: 2, Value: -0.45}}, data.Entries)
}

// TestReadSkipsBadLines records malformed and out-of-range lines and goes on.
func TestReadSkipsBadLines(t *testing.T) {
	src := strings.Join([]string{
		"2 2",
		"1 1 1",
		"1 x 2",   // line 3: bad column
		"1 2",     // line 4: too few fields
		"3 1 5",   // line 5: row out of range
		"0 1 5",   // line 6: 0 is out of range for 1-indexed input
		"2 2 abc", // line 7: bad value
		"2 1 4",
	}, "\n")
	data, err := mmio.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, data.Entries, 2)
	require.Len(t, data.Report.Skipped, 5)

	lines := make([]int, 0, len(data.Report.Skipped))
	for _, le := range data.Report.Skipped {
		lines = append(lines, le.Line)
	}
	require.Equal(t, []int{3, 4, 5, 6, 7}, lines)

	require.ErrorIs(t, data.Report.Skipped[0], mmio.ErrMalformedLine)
	require.ErrorIs(t, data.Report.Skipped[0], sparse.ErrIO)
	require.ErrorIs(t, data.Report.Skipped[2], mmio.ErrEntryOutOfRange)
	require.ErrorIs(t, data.Report.Skipped[2], sparse.ErrOutOfBounds)
	require.Contains(t, data.Report.Skipped[1].Error(), `line 4 "1 2"`)

	var le mmio.LineError
	require.True(t, errors.As(data.Report.Skipped[4], &le))
	require.Equal(t, "2 2 abc", le.Text)
}

// TestReadBadHeader rejects missing and unparsable headers.
func TestReadBadHeader(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"comments only", "% nothing here\n%% still nothing\n"},
		{"one field", "4\n1 1 1\n"},
		{"four fields", "1 2 3 4\n"},
		{"not a number", "four 4\n"},
		{"negative", "-1 4\n"},
		{"oversized", "1 3000000000000\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			data, err := mmio.Read(strings.NewReader(tc.src))
			require.Nil(t, data)
			require.ErrorIs(t, err, mmio.ErrBadHeader)
			require.ErrorIs(t, err, sparse.ErrIO)
		})
	}
}

// TestReadNonFiniteValues skips NaN always and ±Inf under the default policy.
func TestReadNonFiniteValues(t *testing.T) {
	src := "2 2\n1 1 1\n2 2 inf\n1 2 NaN\n2 1 -Inf\n"

	data, err := mmio.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []sparse.Triplet[float64]{{Row: 1, Col: 1, Value: 1}}, data.Entries)
	require.Len(t, data.Report.Skipped, 3)
	for _, le := range data.Report.Skipped {
		require.ErrorIs(t, le, mmio.ErrMalformedLine)
	}

	relaxed, err := mmio.Read(strings.NewReader(src),
		mmio.WithMatrixOptions(sparse.WithNoValidateNaNInf()))
	require.NoError(t, err)
	require.Len(t, relaxed.Entries, 3)
	require.Len(t, relaxed.Report.Skipped, 1)
	require.Equal(t, 4, relaxed.Report.Skipped[0].Line) // the NaN line
}

// TestReadMaxDimension rejects headers above the configured cap.
func TestReadMaxDimension(t *testing.T) {
	_, err := mmio.Read(strings.NewReader("4 4\n1 1 1\n"), mmio.WithMaxDimension(3))
	require.ErrorIs(t, err, mmio.ErrBadHeader)

	data, err := mmio.Read(strings.NewReader("3 3\n1 1 1\n"), mmio.WithMaxDimension(3))
	require.NoError(t, err)
	require.Equal(t, 3, data.Header.Rows)

	require.Panics(t, func() { mmio.WithMaxDimension(0) })
}

// TestReadProgress reports every n lines and once at the end.
func TestReadProgress(t *testing.T) {
	var b strings.Builder
	b.WriteString("5 5\n")
	for i := 1; i <= 5; i++ {
		b.WriteString("1 1 1\n")
	}

	var calls []int
	_, err := mmio.Read(strings.NewReader(b.String()),
		mmio.WithProgress(func(lines int) { calls = append(calls, lines) }),
		mmio.WithProgressEvery(2),
	)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6, 6}, calls)

	require.Panics(t, func() { mmio.WithProgressEvery(0) })
}

// TestReadLongLine rejects a line beyond the scanner limit with ErrIO.
func TestReadLongLine(t *testing.T) {
	src := "1 1\n% " + strings.Repeat("x", 2<<20) + "\n"
	_, err := mmio.Read(strings.NewReader(src))
	require.ErrorIs(t, err, sparse.ErrIO)
}

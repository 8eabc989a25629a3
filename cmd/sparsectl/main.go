// SPDX-License-Identifier: MIT

// Package main is a console driver for the sparse engine.
//
// It loads a triplet file, optionally compresses it, and prints the shape,
// the skipped input lines, the three norms and (with -matvec) A·1.
//
//	sparsectl -format csr -matvec testdata/A.mtx
//	sparsectl -ordering col -format csc -tol 1e-12 A.mtx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gosuri/uilive"
	"github.com/katalvlaran/lvsparse/mmio"
	"github.com/katalvlaran/lvsparse/sparse"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sparsectl: ")

	format := flag.String("format", "", "compress to csr or csc after loading (empty: stay uncompressed)")
	ordering := flag.String("ordering", "row", "key ordering: row or col")
	tol := flag.Float64("tol", sparse.DefaultTolerance, "sparsity tolerance")
	matvec := flag.Bool("matvec", false, "print A·1")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Println("exactly one argument expected: the path to the triplet file")
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *format, *ordering, *tol, *matvec); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(path, format, ordering string, tol float64, matvec bool) error {
	ord, err := parseOrdering(ordering)
	if err != nil {
		return err
	}
	if tol < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %g", tol)
	}

	writer := uilive.New()
	writer.Start()
	m, report, err := mmio.LoadFile(path,
		mmio.WithMatrixOptions(sparse.WithOrdering(ord), sparse.WithTolerance(tol)),
		mmio.WithProgress(func(lines int) {
			fmt.Fprintf(writer, "parsed %d lines\n", lines)
		}),
	)
	writer.Stop()
	if err != nil {
		return err
	}

	fmt.Printf("shape: %dx%d, nnz: %d, ordering: %v\n", m.Rows(), m.Cols(), m.NNZ(), m.Ordering())
	for _, le := range report.Skipped {
		fmt.Printf("skipped %v\n", le)
	}

	if format != "" {
		f, err := parseFormat(format)
		if err != nil {
			return err
		}
		if err = m.Compress(f); err != nil {
			return err
		}
		fmt.Printf("layout: %v\n", m.Layout())
	}

	for _, kind := range []sparse.NormKind{sparse.NormOne, sparse.NormInf, sparse.NormFrobenius} {
		n, err := m.Norm(kind)
		if err != nil {
			return err
		}
		fmt.Printf("norm %-9v %g\n", kind, n)
	}

	if matvec {
		ones := make([]float64, m.Cols())
		for i := range ones {
			ones[i] = 1
		}
		y, err := sparse.MulVec(m, ones)
		if err != nil {
			return err
		}
		fmt.Printf("A·1 = %v\n", y)
	}

	return nil
}

func parseOrdering(s string) (sparse.Ordering, error) {
	switch s {
	case "row":
		return sparse.RowMajor, nil
	case "col":
		return sparse.ColumnMajor, nil
	default:
		return 0, fmt.Errorf("unknown ordering %q (want row or col)", s)
	}
}

func parseFormat(s string) (sparse.Format, error) {
	switch s {
	case "csr":
		return sparse.CSR, nil
	case "csc":
		return sparse.CSC, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want csr or csc)", s)
	}
}

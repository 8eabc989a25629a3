// SPDX-License-Identifier: MIT

package mmio

import "github.com/katalvlaran/lvsparse/sparse"

// DefaultProgressEvery is the number of input lines between progress callbacks.
const DefaultProgressEvery = 4096

// DefaultMaxDimension caps the rows and cols a header may declare. Norms and
// compression allocate per row or column, so the cap bounds memory use.
const DefaultMaxDimension = 1 << 26

const (
	panicProgressEveryInvalid = "mmio: WithProgressEvery: n must be > 0"
	panicMaxDimensionInvalid  = "mmio: WithMaxDimension: n must be > 0"
)

// Option configures Read and LoadFile.
type Option func(*options)

type options struct {
	matrixOpts    []sparse.Option // forwarded to sparse.NewFromTriplets
	progress      func(lines int) // nil: no reporting
	progressEvery int             // > 0
	maxDimension  int             // > 0; header rows and cols above it are rejected
}

// WithMatrixOptions forwards sparse options (tolerance, ordering, ...) to the
// matrix built by LoadFile. The index base is always 1 for files.
func WithMatrixOptions(opts ...sparse.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// WithProgress registers fn, called with the running line count every
// DefaultProgressEvery lines (see WithProgressEvery) and once at the end.
func WithProgress(fn func(lines int)) Option {
	return func(o *options) { o.progress = fn }
}

// WithProgressEvery changes the progress granularity. Panics when n <= 0.
func WithProgressEvery(n int) Option {
	if n <= 0 {
		panic(panicProgressEveryInvalid)
	}

	return func(o *options) { o.progressEvery = n }
}

// WithMaxDimension overrides DefaultMaxDimension. Panics when n <= 0.
func WithMaxDimension(n int) Option {
	if n <= 0 {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *options) { o.maxDimension = n }
}

func gatherOptions(user ...Option) options {
	o := options{progressEvery: DefaultProgressEvery, maxDimension: DefaultMaxDimension}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

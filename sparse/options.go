// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global numeric state: the tolerance travels with each Matrix.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package sparse

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the magnitude at or below which a value is treated
	// as structurally absent and never stored.
	DefaultTolerance = 1e-8

	// DefaultOrdering is the key ordering of a freshly built matrix.
	DefaultOrdering = RowMajor

	// DefaultIndexBase is the index base of triplets fed to NewFromTriplets.
	// Triplet files are 1-indexed.
	DefaultIndexBase = 1

	// DefaultValidateNaNInf rejects NaN/±Inf values on construction and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages ----------

const (
	panicToleranceInvalid = "sparse: WithTolerance: tol must be finite, non-negative"
	panicOrderingInvalid  = "sparse: WithOrdering: unknown ordering"
	panicIndexBaseInvalid = "sparse: WithIndexBase: base must be 0 or 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol            float64  // >= 0; DefaultTolerance
	ordering       Ordering // DefaultOrdering
	indexBase      int      // 0 or 1; DefaultIndexBase
	validateNaNInf bool     // DefaultValidateNaNInf
}

// Tolerance returns the effective sparsity tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// Ordering returns the effective key ordering.
func (o Options) Ordering() Ordering { return o.ordering }

// ValidateNaNInf reports whether ±Inf values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithTolerance sets the sparsity threshold: values with |v| <= tol are dropped.
// Implementation:
//   - Stage 1: validate tol is finite and >= 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - tol = 0 keeps every non-zero value; exact zeros are still never stored.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithOrdering selects RowMajor (CSR-compatible) or ColumnMajor (CSC-compatible).
// Panics on values outside the enum.
func WithOrdering(ord Ordering) Option {
	if ord != RowMajor && ord != ColumnMajor {
		panic(panicOrderingInvalid)
	}

	return func(o *Options) { o.ordering = ord }
}

// WithIndexBase sets the index base of triplets passed to NewFromTriplets.
// Only 0 and 1 are meaningful; anything else panics.
func WithIndexBase(base int) Option {
	if base != 0 && base != 1 {
		panic(panicIndexBaseInvalid)
	}

	return func(o *Options) { o.indexBase = base }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf relaxes finite-value validation to admit ±Inf,
// which is then stored as-is. NaN is rejected with ErrNaNInf either way.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts on top of the defaults. mmio.Read uses it to
// apply the forwarded finite-value policy while parsing.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:            DefaultTolerance,
		ordering:       DefaultOrdering,
		indexBase:      DefaultIndexBase,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

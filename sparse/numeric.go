// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"math/cmplx"
	"reflect"
)

// magnitude returns |v| for reals and the modulus for complex values.
// The concrete cases cover the predeclared types; named types (e.g. a
// `type Volt float64`) fall through to reflection.
func magnitude[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case float32:
		return math.Abs(float64(x))
	case complex128:
		return cmplx.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return cmplx.Abs(rv.Complex())
	default:
		return math.Abs(rv.Float())
	}
}

// isNonFinite reports whether a magnitude is NaN or ±Inf.
func isNonFinite(mag float64) bool {
	return math.IsNaN(mag) || math.IsInf(mag, 0)
}

// significant reports whether v survives the sparsity policy (|v| > tol).
// NaN compares false and is therefore never significant.
func significant[T Scalar](v T, tol float64) bool {
	return magnitude(v) > tol
}

// Package intkit has helpers for working with integer type parameters
// regardless of their width and signedness.
package intkit

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IsSigned reports whether the integer type can represent negative values.
func IsSigned[I constraints.Integer]() bool {
	var zero I
	// all bits set is -1 for a signed type and the maximum value for an unsigned one
	return ^zero < zero
}

// ToInt converts n into the platform native int.
// It reports false when n is out of int's range,
// e.g. a uint64 above math.MaxInt, or an int64 above math.MaxInt32 on a 32-bit platform.
func ToInt[I constraints.Integer](n I) (int, bool) {
	if IsSigned[I]() {
		v := int64(n)
		if v < math.MinInt || math.MaxInt < v {
			return 0, false
		}
		return int(v), true
	}
	v := uint64(n)
	if math.MaxInt < v {
		return 0, false
	}
	return int(v), true
}

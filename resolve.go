package ati

import (
	"fmt"

	"github.com/KlasafGeijerstam/ati/internal/intkit"
)

// Resolve translates index into a forward position of a container with the given length.
//
// A negative index is counted back from the end, so -1 resolves to length-1 and -length to 0.
// When the index points before the first element, Resolve panics with an *IndexError.
//
// Resolve doesn't check the upper bound.
// A position at or beyond length is left for the container's own bounds check to report.
func Resolve[I Integer](length int, index I) int {
	if 0 <= index {
		return forward(index)
	}
	return backward(length, index)
}

// resolve is the lazy form of Resolve, length is only consulted for negative indexes.
func resolve[I Integer](length func() int, index I) int {
	if 0 <= index {
		return forward(index)
	}
	return backward(length(), index)
}

func forward[I Integer](index I) int {
	position, ok := intkit.ToInt(index)
	if !ok {
		panic(&OverflowError{Index: fmt.Sprint(index)})
	}
	return position
}

func backward[I Integer](length int, index I) int {
	// length is never negative, so adding a negative index can't overflow int64
	candidate := int64(length) + int64(index)
	if candidate < 0 {
		panic(&IndexError{Index: candidate})
	}
	return int(candidate)
}

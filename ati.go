// Package ati gives ordered collections an "at" style access:
// a non-negative index counts from the start, a negative one counts back from the end.
//
//	vs := []int{1, 2, 3, 4}
//	ati.At(vs, 0)  // 1
//	ati.At(vs, -1) // 4
//
// Access is bounds-checked the same way as Go's own index expressions:
// an index outside the collection panics, it never gets clamped or wrapped.
// Callers who want to avoid the panic check the length beforehand.
//
// Slices and arrays (through arr[:]) are indexed with At and AtMut.
// Any other ordered container which implements Sequence is indexed with Get, Set and Update.
// Containers which can't tell their length only accept unsigned indexes, see GetUnsigned.
package ati

import "golang.org/x/exp/constraints"

type (
	// Integer is any index kind, signed or unsigned, of any width.
	Integer = constraints.Integer
	// Signed index kinds support negative indexing.
	Signed = constraints.Signed
	// Unsigned index kinds always count from the start.
	Unsigned = constraints.Unsigned
)

// Lengther is the Length capability of a container.
// Len must be a pure O(1) query.
type Lengther interface {
	Len() int
}

// Indexer is the native positional access of a container.
// Both At and Set are expected to panic when i is not within the container's range.
type Indexer[T any] interface {
	At(i int) T
	Set(i int, v T)
}

// Sequence is an ordered container which can be indexed from both of its ends.
type Sequence[T any] interface {
	Indexer[T]
	Lengther
}

package ati

// Get returns the element of c at index i.
// Negative indexes count back from the end.
// The length of c is only asked for when i is negative.
func Get[T any, I Integer](c Sequence[T], i I) T {
	return c.At(resolve(c.Len, i))
}

// Set replaces the element of c at index i with v.
// Negative indexes count back from the end.
func Set[T any, I Integer](c Sequence[T], i I, v T) {
	c.Set(resolve(c.Len, i), v)
}

// Update replaces the element of c at index i with the result of fn,
// and returns the stored value. The index is resolved only once.
//
//	ati.Update(seq, -1, func(n int) int { return n + 1 })
func Update[T any, I Integer](c Sequence[T], i I, fn func(T) T) T {
	position := resolve(c.Len, i)
	v := fn(c.At(position))
	c.Set(position, v)
	return v
}

// GetUnsigned returns the element of c at index i.
// It works with containers that can't report their length,
// which is also why it only accepts unsigned indexes.
func GetUnsigned[T any, I Unsigned](c Indexer[T], i I) T {
	return c.At(forward(i))
}

// SetUnsigned replaces the element of c at index i with v.
func SetUnsigned[T any, I Unsigned](c Indexer[T], i I, v T) {
	c.Set(forward(i), v)
}

package ati

// At returns the element of s at index i.
// A negative i counts back from the end, -1 being the last element.
//
//	vs := []int{1, 2, 3}
//	ati.At(vs, -2) // 2
//
// It panics with an *IndexError if a negative i points before the first element,
// and with the runtime's own index out of range error if i is beyond the last one.
// Fixed-size arrays can be indexed through arr[:].
func At[S ~[]T, T any, I Integer](s S, i I) T {
	return s[Resolve(len(s), i)]
}

// AtMut returns a pointer to the element of s at index i,
// which allows updating the element in place.
//
//	vs := []int{1, 2, 3}
//	*ati.AtMut(vs, -1) = 5 // vs == []int{1, 2, 5}
//
// The pointer aliases the backing array of s,
// so for a fixed-size array (indexed through arr[:]) the array itself is updated.
// AtMut panics in the same way as At.
func AtMut[S ~[]T, T any, I Integer](s S, i I) *T {
	return &s[Resolve(len(s), i)]
}

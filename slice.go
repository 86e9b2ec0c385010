package ati

// Slice is a Sequence view of a Go slice.
// Its native access is the slice's own index expression,
// so an out of range position panics with the runtime's error.
type Slice[T any] []T

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) At(i int) T { return s[i] }

func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Ptr returns a pointer to the element at position i.
func (s Slice[T]) Ptr(i int) *T { return &s[i] }

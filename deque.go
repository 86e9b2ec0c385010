package ati

import "github.com/gammazero/deque"

// *deque.Deque[T] is a double-ended queue that already has the shape of a Sequence,
// its own At and Set perform the bounds check.
var _ Sequence[any] = (*deque.Deque[any])(nil)

var (
	_ Sequence[any] = Slice[any]{}
	_ Sequence[any] = List[any]{}
)

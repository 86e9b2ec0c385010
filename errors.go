package ati

import (
	"fmt"

	"github.com/KlasafGeijerstam/ati/internal/errorkitlite"
)

// ErrOutOfBounds is the common cause of every out-of-bounds panic raised by this package.
// Only this package's own panics (IndexError, RangeError, OverflowError) wrap it;
// a container's native bounds check panics with whatever that container raises,
// a runtime.Error for slices or a plain string for deque.Deque.
//
//	defer func() {
//		if err, ok := recover().(error); ok && errors.Is(err, ati.ErrOutOfBounds) {
//			// ...
//		}
//	}()
const ErrOutOfBounds errorkitlite.Error = "index out of bounds"

// IndexError is raised when a negative index still points before the first element
// after it got counted back from the end.
type IndexError struct {
	// Index is the position the negative index resolved to, always negative.
	Index int64
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("%s: the index is (%d)", ErrOutOfBounds, err.Index)
}

func (err *IndexError) Is(target error) bool { return target == ErrOutOfBounds }

// RangeError is raised by the containers of this package
// when a resolved position is not less than the length.
type RangeError struct {
	Index  int
	Length int
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("%s: the len is %d but the index is %d", ErrOutOfBounds, err.Length, err.Index)
}

func (err *RangeError) Is(target error) bool { return target == ErrOutOfBounds }

// OverflowError is raised when a non-negative index doesn't fit into int,
// and so it can't address any element of any container.
type OverflowError struct {
	Index string
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("%s: the index %s overflows int", ErrOutOfBounds, err.Index)
}

func (err *OverflowError) Is(target error) bool { return target == ErrOutOfBounds }

package ati

import (
	"container/list"
	"reflect"

	"github.com/KlasafGeijerstam/ati/internal/errorkitlite"
)

// ErrElementType is raised when a list element doesn't hold a value of the expected type.
const ErrElementType errorkitlite.Error = "unexpected element type"

// List is a typed Sequence view of a doubly linked list from container/list.
//
// Len is O(1). Positional access walks the list from whichever end is closer,
// so it takes at most Len()/2 steps.
// A nil *list.List is an empty sequence.
type List[T any] struct {
	list *list.List
}

// ListOf returns a view of l that holds T typed values.
// Changes made through the view are visible in l and the other way around.
func ListOf[T any](l *list.List) List[T] {
	return List[T]{list: l}
}

func (l List[T]) Len() int {
	if l.list == nil {
		return 0
	}
	return l.list.Len()
}

func (l List[T]) At(i int) T {
	e := l.element(i)
	v, ok := e.Value.(T)
	if !ok && e.Value != nil {
		panic(ErrElementType.F("element %d is a %T, not a %s", i, e.Value, reflect.TypeFor[T]()))
	}
	return v
}

func (l List[T]) Set(i int, v T) {
	l.element(i).Value = v
}

func (l List[T]) element(i int) *list.Element {
	length := l.Len()
	if i < 0 || length <= i {
		panic(&RangeError{Index: i, Length: length})
	}
	if i < length/2 {
		e := l.list.Front()
		for ; 0 < i; i-- {
			e = e.Next()
		}
		return e
	}
	e := l.list.Back()
	for n := length - 1; i < n; n-- {
		e = e.Prev()
	}
	return e
}

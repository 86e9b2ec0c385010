// Package errorkitlite holds the small error toolkit the ati package builds its panic values on.
package errorkitlite

import (
	"errors"
	"fmt"
)

// Error is a string error type that makes it possible to declare error constants.
//
//	const ErrSomething errorkitlite.Error = "something went wrong"
type Error string

func (err Error) Error() string { return string(err) }

// F formats a message and bundles it with the Error constant,
// so errors.Is still finds the constant.
func (err Error) F(format string, a ...any) error {
	return W{E: err, W: fmt.Errorf(format, a...)}
}

// W is an Error constant wrapped together with a detailed error.
type W struct {
	E Error
	W error
}

func (w W) Error() string {
	var msg string
	if w.W != nil {
		msg = w.W.Error()
	}
	return fmt.Sprintf("[%s] %s", w.E, msg)
}

func (w W) As(target any) bool {
	return errors.As(w.E, target) || errors.As(w.W, target)
}

func (w W) Is(target error) bool {
	return errors.Is(w.E, target) || errors.Is(w.W, target)
}

// Package apperr defines the error type used for user-facing errors
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a message template. Package-level values
// act as sentinels that can be matched with errors.Is even after they have
// been formatted or wrapped.
type Error struct {
	Cause   error
	sent    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.sent != nil && e.sent == t)
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		sent:    e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		sent:    e.root(),
	}
}

func (e *Error) root() *Error {
	if e.sent != nil {
		return e.sent
	}

	return e
}

// As is a shorthand for errors.As with an *Error target.
func As(err error) (*Error, bool) {
	var target *Error

	ok := errors.As(err, &target)

	return target, ok
}

// Package apperr defines the error type shared by all tally packages.
package apperr

import "fmt"

// Error is an application error with an optional underlying cause.
// Copies produced by Fmt and Wrap still match the original value
// with errors.Is.
type Error struct {
	base    *Error
	Cause   error
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

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// Fmt returns a copy of the error with its message format verbs
// substituted with the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		base:    e.root(),
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error with the specified underlying cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		base:    e.root(),
		Message: e.Message,
		Cause:   cause,
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

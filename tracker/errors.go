package tracker

import "tally/internal/apperr"

var (
	// ErrSessionActive is returned by Start while a session is running.
	ErrSessionActive = &apperr.Error{
		Message: "a session is already active",
	}

	// ErrNoActiveSession is returned by operations that require a running
	// session.
	ErrNoActiveSession = &apperr.Error{
		Message: "no active session",
	}

	// ErrEmptyDescription is returned when updating a session description
	// with blank text.
	ErrEmptyDescription = &apperr.Error{
		Message: "description cannot be empty",
	}
)

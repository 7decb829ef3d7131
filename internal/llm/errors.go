package llm

import "errors"

// ErrUnavailable is returned when every configured provider failed for a
// call. It is the only llm error the rest of the system handles specially:
// intake turns degrade to a retry prompt, generation turns fail the turn.
var ErrUnavailable = errors.New("language model unavailable")

// TransientError marks a failure that may succeed on retry (network errors,
// rate limiting, 5xx responses).
type TransientError struct {
	err error
}

func (e *TransientError) Error() string { return e.err.Error() }
func (e *TransientError) Unwrap() error { return e.err }

// NewTransientError wraps an error as transient.
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError marks a failure that will not succeed on retry against the
// same provider (auth failures, bad requests). Fatal errors still fall
// through to the next provider.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string { return e.err.Error() }
func (e *FatalError) Unwrap() error { return e.err }

// NewFatalError wraps an error as fatal for the current provider.
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// IsTransient reports whether err should be retried on the same provider.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

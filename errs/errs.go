package errs

import (
	"errors"
	"fmt"
)

// Common error sentinel values
var (
	ErrNotFound             = errors.New("not found")
	ErrUniqueConstraint     = errors.New("unique constraint violation")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrStorage              = errors.New("storage failure")
)

type ModelErr struct {
	err     error
	Entity  string // Entity the operation was acting on
	Details string // Additional details about the error
	Cause   error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ModelErr as an argument of type `error`
func (e *ModelErr) Error() string {
	msg := e.err.Error()
	if e.Entity != "" {
		msg = fmt.Sprintf("%s: %s", e.Entity, msg)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// GetFullError returns a recursive error message including all causes
func (e *ModelErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		// Check if the cause is also a ModelErr for recursive error handling
		if modelErr, ok := e.Cause.(*ModelErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, modelErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ModelErr{err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ModelErr) Unwrap() error {
	return e.err
}

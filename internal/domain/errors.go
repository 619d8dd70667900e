package domain

import (
	"errors"
	"fmt"
)

// PreconditionError flags a caller handing the simulation an impossible input.
type PreconditionError struct {
	Op     string
	Field  string
	Value  float64
	Reason string
}

// NewPreconditionError builds a PreconditionError.
func NewPreconditionError(op, field string, value float64, reason string) *PreconditionError {
	return &PreconditionError{Op: op, Field: field, Value: value, Reason: reason}
}

func (e *PreconditionError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "invalid input"
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %s (got %g)", e.Op, e.Field, msg, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

// AsPreconditionError attempts to unwrap an error into a PreconditionError.
func AsPreconditionError(err error) (*PreconditionError, bool) {
	var pErr *PreconditionError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error reporting a bad argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a single rejected argument.
type ArgumentError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", ErrInvalidArgument, e.Name, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func argError(name string, value interface{}, format string, a ...interface{}) error {
	return &ArgumentError{
		Name:   name,
		Value:  value,
		Reason: fmt.Sprintf(format, a...),
	}
}

package geo

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a geometric operation is given a parameter
// that leaves its result mathematically undefined.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which operation rejected its input and why.
// It unwraps to ErrInvalidArgument.
type ArgumentError struct {
	Op     string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrInvalidArgument, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

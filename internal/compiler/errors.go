package compiler

import (
	"github.com/pkg/errors"
)

// ErrBackend is matched (via errors.Is) by every failure reported by the native backend.
var ErrBackend = errors.New("compiler: native backend failure")

// UnsupportedTypeError is returned when Compile receives a value outside the
// set of inputs it knows how to compile.
type UnsupportedTypeError struct {
	Type string // runtime type, as printed by %T
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return "compiler: unsupported input type " + e.Type
}

// UnsupportedOperationError is returned when a recognized input asks for
// behavior the compiler does not implement.
type UnsupportedOperationError struct {
	Op     string // node or adapter that rejected the input
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	return "compiler: " + e.Op + ": " + e.Reason
}

// BackendError wraps an error returned by a native constructor.
type BackendError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return "compiler: " + e.Op + ": backend: " + e.Err.Error()
}

// Unwrap returns the backend's own error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is matches ErrBackend.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

func errUnsupportedOp(op, reason string) error {
	return &UnsupportedOperationError{Op: op, Reason: reason}
}

// Package native defines the constructor surface a numeric backend exposes to the compiler.
//
// A backend owns matrix objects that live outside the Go type system. The
// compiler only ever creates them; it never reads matrix contents. Every
// buffer argument is the address of host memory that the backend may keep
// referring to after the call returns, so the caller must keep that memory
// reachable for as long as the returned object is in use.
package native

import (
	"errors"
	"unsafe"
)

// Ptr is an opaque, address-sized reference to a backend matrix object.
// The zero value is the null reference.
type Ptr uintptr

// IsNull reports whether p is the null reference.
func (p Ptr) IsNull() bool {
	return p == 0
}

// ErrNullPtr is returned when a backend hands back a null reference without an error.
var ErrNullPtr = errors.New("native: backend returned null pointer")

// Backend is the set of native constructor entry points.
//
// Implementations:
//   - host: pure Go reference backend (internal/backend/host)
type Backend interface {
	// NewDense builds a dense matrix over rows*cols elements of dtype at data.
	NewDense(rows, cols int, dtype string, data unsafe.Pointer, rowMajor bool) (Ptr, error)

	// NewSparse builds a compressed sparse matrix. indptr holds uint64 offsets
	// along the major axis (rows when rowMajor, columns otherwise).
	NewSparse(rows, cols, nnz int,
		data unsafe.Pointer, dataType string,
		indices unsafe.Pointer, indexType string,
		indptr unsafe.Pointer, rowMajor bool) (Ptr, error)

	// NewUnary applies an elementwise operation.
	NewUnary(child Ptr, op string) (Ptr, error)

	// NewUnaryScalar applies a binary operation against a scalar.
	// When isRight is true the scalar is the right operand (x op v).
	NewUnaryScalar(child Ptr, value float64, isRight bool, op string) (Ptr, error)

	// NewUnaryVector applies a binary operation against a float64 vector of
	// length n broadcast along axis.
	NewUnaryVector(child Ptr, vec unsafe.Pointer, n int, op string, isRight bool, axis int) (Ptr, error)

	// NewSubset selects n uint64 indices along axis.
	NewSubset(child Ptr, indices unsafe.Pointer, n int, axis int) (Ptr, error)

	// NewCombine concatenates count matrices whose Ptr values are stored
	// contiguously at children.
	NewCombine(children unsafe.Pointer, count int, axis int) (Ptr, error)

	// NewTranspose swaps the two axes.
	NewTranspose(child Ptr) (Ptr, error)

	// NewBinary applies an elementwise operation between two matrices of equal shape.
	NewBinary(left, right Ptr, op string) (Ptr, error)

	// Release frees a matrix object. Objects built on top of it stay valid.
	Release(p Ptr)
}

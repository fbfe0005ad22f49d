// Package compiler turns dense seeds, sparse seeds and deferred operation
// trees into native matrix handles.
//
// Compilation is a single depth-first pass: every child is compiled before
// the node that uses it, and each node's handle anchors the union of its
// children's anchors plus any buffer the node allocated for itself. The
// compiler holds no mutable state, so one Compiler may be shared between
// goroutines as long as its backend allows it.
package compiler

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/lazymat/internal/lazy"
	"github.com/born-ml/lazymat/internal/native"
	"github.com/born-ml/lazymat/internal/sparse"
	"github.com/born-ml/lazymat/internal/tensor"
)

// Config controls compilation limits.
type Config struct {
	MaxDepth int // Deepest operation tree accepted; 0 disables the check.
}

// DefaultConfig returns the default limits.
func DefaultConfig() Config {
	return Config{
		MaxDepth: 4096,
	}
}

// Compiler compiles inputs against one native backend.
type Compiler struct {
	backend native.Backend
	cfg     Config
}

// New creates a compiler for backend.
func New(backend native.Backend, cfg Config) *Compiler {
	return &Compiler{
		backend: backend,
		cfg:     cfg,
	}
}

// Backend returns the native backend handles are created on.
func (c *Compiler) Backend() native.Backend {
	return c.backend
}

// Compile produces a native handle for input.
//
// Accepted inputs:
//   - *Handle: returned unchanged
//   - *tensor.Array: 2-D, row-major or column-major contiguous
//   - *sparse.CSRMatrix, *sparse.CSRArray, *sparse.CSCMatrix, *sparse.CSCArray
//   - *lazy.Unary, *lazy.UnaryArg, *lazy.Subset, *lazy.Combine,
//     *lazy.Transpose, *lazy.Binary, *lazy.Round
//
// Anything else fails with *UnsupportedTypeError. No partial result is
// returned on failure.
func (c *Compiler) Compile(input any) (*Handle, error) {
	return c.compile(input, 0)
}

func (c *Compiler) compile(input any, depth int) (*Handle, error) {
	if c.cfg.MaxDepth > 0 && depth > c.cfg.MaxDepth {
		return nil, errUnsupportedOp("compile", fmt.Sprintf("operation tree deeper than %d", c.cfg.MaxDepth))
	}

	// Typed nil pointers fall through to UnsupportedTypeError.
	switch x := input.(type) {
	case *Handle:
		if x != nil {
			return x, nil
		}
	case *tensor.Array:
		if x != nil {
			return c.compileDense(x)
		}
	case *sparse.CSRMatrix:
		if x != nil {
			return c.compileSparse(&x.Compressed, true, x)
		}
	case *sparse.CSRArray:
		if x != nil {
			return c.compileSparse(&x.Compressed, true, x)
		}
	case *sparse.CSCMatrix:
		if x != nil {
			return c.compileSparse(&x.Compressed, false, x)
		}
	case *sparse.CSCArray:
		if x != nil {
			return c.compileSparse(&x.Compressed, false, x)
		}
	case *lazy.Unary:
		if x != nil {
			return c.compileUnary(x, depth)
		}
	case *lazy.UnaryArg:
		if x != nil {
			return c.compileUnaryArg(x, depth)
		}
	case *lazy.Subset:
		if x != nil {
			return c.compileSubset(x, depth)
		}
	case *lazy.Combine:
		if x != nil {
			return c.compileCombine(x, depth)
		}
	case *lazy.Transpose:
		if x != nil {
			return c.compileTranspose(x, depth)
		}
	case *lazy.Binary:
		if x != nil {
			return c.compileBinary(x, depth)
		}
	case *lazy.Round:
		if x != nil {
			return c.compileRound(x, depth)
		}
	}
	return nil, &UnsupportedTypeError{Type: fmt.Sprintf("%T", input)}
}

// child compiles a node's operand and checks that it lives on this compiler's backend.
func (c *Compiler) child(input any, depth int, what string) (*Handle, error) {
	h, err := c.compile(input, depth+1)
	if err != nil {
		return nil, errors.Wrap(err, what)
	}
	if h.backend != c.backend {
		return nil, errUnsupportedOp(what, "handle was compiled for a different backend")
	}
	return h, nil
}

// finish turns the result of a native constructor into a handle.
func (c *Compiler) finish(op string, ptr native.Ptr, err error, shape tensor.Shape, anchors anchorSet) (*Handle, error) {
	if err != nil {
		return nil, &BackendError{Op: op, Err: err}
	}
	if ptr.IsNull() {
		return nil, &BackendError{Op: op, Err: native.ErrNullPtr}
	}
	return newHandle(c.backend, ptr, shape, anchors), nil
}

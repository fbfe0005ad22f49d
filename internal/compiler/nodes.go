package compiler

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/born-ml/lazymat/internal/lazy"
	"github.com/born-ml/lazymat/internal/native"
	"github.com/born-ml/lazymat/internal/normalize"
	"github.com/born-ml/lazymat/internal/tensor"
)

func (c *Compiler) compileUnary(n *lazy.Unary, depth int) (*Handle, error) {
	return c.unary(n.Child, n.Op, depth)
}

func (c *Compiler) unary(child any, op string, depth int) (*Handle, error) {
	h, err := c.child(child, depth, op)
	if err != nil {
		return nil, err
	}
	ptr, err := c.backend.NewUnary(h.ptr, op)
	return c.finish(op, ptr, err, h.shape, h.anchors)
}

// compileUnaryArg picks the scalar or vector overload from the runtime type of the argument.
func (c *Compiler) compileUnaryArg(n *lazy.UnaryArg, depth int) (*Handle, error) {
	h, err := c.child(n.Child, depth, n.Op)
	if err != nil {
		return nil, err
	}

	if value, ok := scalarValue(n.Arg); ok {
		ptr, err := c.backend.NewUnaryScalar(h.ptr, value, n.IsRight, n.Op)
		return c.finish(n.Op, ptr, err, h.shape, h.anchors)
	}

	vec, err := vectorArg(n.Op, n.Arg)
	if err != nil {
		return nil, err
	}
	ptr, err := c.backend.NewUnaryVector(h.ptr, vec.Ptr(), vec.NumElements(), n.Op, n.IsRight, n.Axis)
	return c.finish(n.Op, ptr, err, h.shape, h.anchors.with(vec))
}

func scalarValue(arg any) (float64, bool) {
	switch v := arg.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// vectorArg returns the contiguous float64 buffer handed to the vector overload.
// The returned array is what the native object points at, so it is always anchored,
// whether or not a conversion took place.
func vectorArg(op string, arg any) (*tensor.Array, error) {
	switch v := arg.(type) {
	case *tensor.Array:
		if v == nil {
			break
		}
		if v.NDim() != 1 {
			return nil, errUnsupportedOp(op, fmt.Sprintf("vector argument must be 1-dimensional, got %d dimensions", v.NDim()))
		}
		out, _ := normalize.Float64(v)
		return out, nil
	case []float64:
		return tensor.Vector(v), nil
	case []float32:
		out, _ := normalize.Float64(tensor.Vector(v))
		return out, nil
	case []int32:
		out, _ := normalize.Float64(tensor.Vector(v))
		return out, nil
	case []int64:
		out, _ := normalize.Float64(tensor.Vector(v))
		return out, nil
	case []int:
		values := make([]float64, len(v))
		for i, x := range v {
			values[i] = float64(x)
		}
		return tensor.Vector(values), nil
	}
	return nil, &UnsupportedTypeError{Type: fmt.Sprintf("%T", arg)}
}

// compileSubset wraps each dimension whose selection is not the identity.
// Rows are handled first; the result feeds the column step.
func (c *Compiler) compileSubset(n *lazy.Subset, depth int) (*Handle, error) {
	h, err := c.child(n.Child, depth, "subset")
	if err != nil {
		return nil, err
	}

	for axis, sel := range [2]lazy.Selector{n.Rows, n.Cols} {
		idx, noop, err := normalize.Indices(sel, h.shape[axis])
		if err != nil {
			return nil, errors.Wrapf(err, "subset axis %d", axis)
		}
		if noop {
			continue
		}
		ptr, err := c.backend.NewSubset(h.ptr, idx.Ptr(), idx.NumElements(), axis)
		shape := h.shape.Clone()
		shape[axis] = idx.NumElements()
		if h, err = c.finish("subset", ptr, err, shape, h.anchors.with(idx)); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (c *Compiler) compileCombine(n *lazy.Combine, depth int) (*Handle, error) {
	if len(n.Children) == 0 {
		return nil, errUnsupportedOp("combine", "requires at least one child")
	}
	if n.Axis != 0 && n.Axis != 1 {
		return nil, errUnsupportedOp("combine", fmt.Sprintf("axis must be 0 or 1, got %d", n.Axis))
	}

	children := make([]*Handle, len(n.Children))
	for i, in := range n.Children {
		h, err := c.child(in, depth, fmt.Sprintf("combine child %d", i))
		if err != nil {
			return nil, err
		}
		children[i] = h
	}

	ptrs := make([]native.Ptr, len(children))
	sets := make([]anchorSet, len(children))
	shape := children[0].shape.Clone()
	shape[n.Axis] = 0
	for i, h := range children {
		ptrs[i] = h.ptr
		sets[i] = h.anchors
		shape[n.Axis] += h.shape[n.Axis]
	}

	ptr, err := c.backend.NewCombine(unsafe.Pointer(&ptrs[0]), len(ptrs), n.Axis) //nolint:gosec // G103: native handoff
	runtime.KeepAlive(children)
	return c.finish("combine", ptr, err, shape, union(sets...))
}

// compileTranspose supports the identity and the axis swap. A nil or empty
// Axes means reversed axes, which for a matrix is the swap.
//
// Any other permutation is rejected with *UnsupportedOperationError, not
// passed through, before the child is compiled.
func (c *Compiler) compileTranspose(n *lazy.Transpose, depth int) (*Handle, error) {
	swap := len(n.Axes) == 0
	switch {
	case swap:
	case len(n.Axes) == 2 && n.Axes[0] == 1 && n.Axes[1] == 0:
		swap = true
	case len(n.Axes) == 2 && n.Axes[0] == 0 && n.Axes[1] == 1:
	default:
		return nil, errUnsupportedOp("transpose", fmt.Sprintf("unsupported permutation %v", n.Axes))
	}

	h, err := c.child(n.Child, depth, "transpose")
	if err != nil {
		return nil, err
	}
	if !swap {
		return h, nil
	}
	ptr, err := c.backend.NewTranspose(h.ptr)
	return c.finish("transpose", ptr, err, tensor.Shape{h.shape[1], h.shape[0]}, h.anchors)
}

func (c *Compiler) compileBinary(n *lazy.Binary, depth int) (*Handle, error) {
	left, err := c.child(n.Left, depth, n.Op+" left")
	if err != nil {
		return nil, err
	}
	right, err := c.child(n.Right, depth, n.Op+" right")
	if err != nil {
		return nil, err
	}
	ptr, err := c.backend.NewBinary(left.ptr, right.ptr, n.Op)
	return c.finish(n.Op, ptr, err, left.shape, union(left.anchors, right.anchors))
}

// compileRound only supports rounding to an integer; the child is not
// compiled when the request is rejected.
func (c *Compiler) compileRound(n *lazy.Round, depth int) (*Handle, error) {
	if n.Decimals != 0 {
		return nil, errUnsupportedOp("round", "non-zero decimals not yet supported")
	}
	return c.unary(n.Child, lazy.OpRound, depth)
}

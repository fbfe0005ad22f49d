package compiler

import (
	"github.com/born-ml/lazymat/internal/normalize"
	"github.com/born-ml/lazymat/internal/sparse"
	"github.com/born-ml/lazymat/internal/tensor"
)

// compileDense wraps a contiguous 2-D array. Nothing is copied: a strided
// view is rejected because copying it would detach the handle from the
// caller's memory.
func (c *Compiler) compileDense(a *tensor.Array) (*Handle, error) {
	if a.NDim() != 2 {
		return nil, errUnsupportedOp("dense", "must be 2-dimensional")
	}
	rowMajor, err := normalize.Layout(a)
	if err != nil {
		return nil, errUnsupportedOp("dense", "must have contiguous storage")
	}

	shape := a.Shape()
	ptr, err := c.backend.NewDense(shape[0], shape[1], a.DType().String(), a.Ptr(), rowMajor)
	return c.finish("dense", ptr, err, shape.Clone(), newAnchors(a))
}

// compileSparse wraps a CSR (rowMajor) or CSC structure.
//
// The container is anchored alongside any normalized copy: its buffers may be
// views into an allocation the compiler cannot see.
func (c *Compiler) compileSparse(s *sparse.Compressed, rowMajor bool, container any) (*Handle, error) {
	// Containers built as struct literals skip the constructors' checks, and
	// the backend reads these buffers by address with no bounds of its own.
	major := s.Rows
	if !rowMajor {
		major = s.Cols
	}
	if err := s.Validate(major); err != nil {
		return nil, errUnsupportedOp("sparse", err.Error())
	}

	for _, a := range []*tensor.Array{s.Data, s.Indices} {
		if !a.IsRowMajor() {
			return nil, errUnsupportedOp("sparse", "data and indices must have contiguous storage")
		}
	}
	indptr, copied, err := normalize.Uint64(s.Indptr)
	if err != nil {
		return nil, errUnsupportedOp("sparse", err.Error())
	}

	ptr, err := c.backend.NewSparse(s.Rows, s.Cols, s.NNZ(),
		s.Data.Ptr(), s.Data.DType().String(),
		s.Indices.Ptr(), s.Indices.DType().String(),
		indptr.Ptr(), rowMajor)

	var anchors anchorSet
	if copied {
		anchors = newAnchors(indptr, container)
	} else {
		anchors = newAnchors(container)
	}
	return c.finish("sparse", ptr, err, s.Shape(), anchors)
}

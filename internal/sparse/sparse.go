// Package sparse provides compressed sparse row and column containers.
//
// Each orientation comes in two surface forms, a "matrix" and an "array"
// flavour, which differ only in how applications treat them. Both carry the
// same three buffers and compile identically.
package sparse

import (
	"fmt"

	"github.com/born-ml/lazymat/internal/tensor"
)

// Compressed holds the buffers of a CSR or CSC structure.
//
// For CSR the major axis is rows: Indptr has rows+1 entries and Indices hold
// column numbers. For CSC the roles are swapped.
type Compressed struct {
	Data    *tensor.Array // stored values, 1-D
	Indices *tensor.Array // minor-axis index of each stored value, 1-D integer
	Indptr  *tensor.Array // major-axis offsets into Data, 1-D integer
	Rows    int
	Cols    int
}

// NNZ returns the number of stored values.
func (c *Compressed) NNZ() int {
	return c.Data.NumElements()
}

// Shape returns the logical matrix shape.
func (c *Compressed) Shape() tensor.Shape {
	return tensor.Shape{c.Rows, c.Cols}
}

var bufferNames = [...]string{"data", "indices", "indptr"}

// Validate checks the structural invariants shared by both orientations.
// major is the number of rows for CSR and the number of columns for CSC.
func (c *Compressed) Validate(major int) error {
	if c.Data == nil || c.Indices == nil || c.Indptr == nil {
		return fmt.Errorf("sparse: data, indices and indptr are required")
	}
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("sparse: invalid shape (%d, %d)", c.Rows, c.Cols)
	}
	for i, a := range []*tensor.Array{c.Data, c.Indices, c.Indptr} {
		if a.NDim() != 1 {
			return fmt.Errorf("sparse: %s must be 1-dimensional, got %d dimensions", bufferNames[i], a.NDim())
		}
	}
	if !c.Indices.DType().IsInteger() || !c.Indptr.DType().IsInteger() {
		return fmt.Errorf("sparse: indices and indptr must be integer arrays, got %s and %s",
			c.Indices.DType(), c.Indptr.DType())
	}
	if c.Data.NumElements() != c.Indices.NumElements() {
		return fmt.Errorf("sparse: %d values but %d indices", c.Data.NumElements(), c.Indices.NumElements())
	}
	if c.Indptr.NumElements() != major+1 {
		return fmt.Errorf("sparse: indptr has %d entries, want %d", c.Indptr.NumElements(), major+1)
	}
	last, err := c.Indptr.Int64At(major)
	if err != nil {
		return fmt.Errorf("sparse: indptr: %w", err)
	}
	if last != int64(c.NNZ()) {
		return fmt.Errorf("sparse: indptr ends at %d, want %d", last, c.NNZ())
	}
	return nil
}

// CSRMatrix is a compressed sparse row matrix.
type CSRMatrix struct{ Compressed }

// CSRArray is the array flavour of a compressed sparse row matrix.
type CSRArray struct{ Compressed }

// CSCMatrix is a compressed sparse column matrix.
type CSCMatrix struct{ Compressed }

// CSCArray is the array flavour of a compressed sparse column matrix.
type CSCArray struct{ Compressed }

// NewCSRMatrix validates the buffers and returns a CSR matrix that aliases them.
func NewCSRMatrix(data, indices, indptr *tensor.Array, rows, cols int) (*CSRMatrix, error) {
	c := Compressed{Data: data, Indices: indices, Indptr: indptr, Rows: rows, Cols: cols}
	if err := c.Validate(rows); err != nil {
		return nil, err
	}
	return &CSRMatrix{c}, nil
}

// NewCSRArray validates the buffers and returns a CSR array that aliases them.
func NewCSRArray(data, indices, indptr *tensor.Array, rows, cols int) (*CSRArray, error) {
	c := Compressed{Data: data, Indices: indices, Indptr: indptr, Rows: rows, Cols: cols}
	if err := c.Validate(rows); err != nil {
		return nil, err
	}
	return &CSRArray{c}, nil
}

// NewCSCMatrix validates the buffers and returns a CSC matrix that aliases them.
func NewCSCMatrix(data, indices, indptr *tensor.Array, rows, cols int) (*CSCMatrix, error) {
	c := Compressed{Data: data, Indices: indices, Indptr: indptr, Rows: rows, Cols: cols}
	if err := c.Validate(cols); err != nil {
		return nil, err
	}
	return &CSCMatrix{c}, nil
}

// NewCSCArray validates the buffers and returns a CSC array that aliases them.
func NewCSCArray(data, indices, indptr *tensor.Array, rows, cols int) (*CSCArray, error) {
	c := Compressed{Data: data, Indices: indices, Indptr: indptr, Rows: rows, Cols: cols}
	if err := c.Validate(cols); err != nil {
		return nil, err
	}
	return &CSCArray{c}, nil
}

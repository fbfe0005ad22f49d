// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sparse provides compressed sparse row (CSR) and column (CSC) matrices.
package sparse

import (
	"github.com/born-ml/lazymat/internal/sparse"
	"github.com/born-ml/lazymat/tensor"
)

// Compressed holds the data, indices and indptr buffers shared by all forms.
type Compressed = sparse.Compressed

// Container forms.
type (
	CSRMatrix = sparse.CSRMatrix
	CSRArray  = sparse.CSRArray
	CSCMatrix = sparse.CSCMatrix
	CSCArray  = sparse.CSCArray
)

// NewCSRMatrix validates the buffers and returns a CSR matrix that aliases them.
func NewCSRMatrix(data, indices, indptr *tensor.Array, rows, cols int) (*CSRMatrix, error) {
	return sparse.NewCSRMatrix(data, indices, indptr, rows, cols)
}

// NewCSRArray validates the buffers and returns a CSR array that aliases them.
func NewCSRArray(data, indices, indptr *tensor.Array, rows, cols int) (*CSRArray, error) {
	return sparse.NewCSRArray(data, indices, indptr, rows, cols)
}

// NewCSCMatrix validates the buffers and returns a CSC matrix that aliases them.
func NewCSCMatrix(data, indices, indptr *tensor.Array, rows, cols int) (*CSCMatrix, error) {
	return sparse.NewCSCMatrix(data, indices, indptr, rows, cols)
}

// NewCSCArray validates the buffers and returns a CSC array that aliases them.
func NewCSCArray(data, indices, indptr *tensor.Array, rows, cols int) (*CSCArray, error) {
	return sparse.NewCSCArray(data, indices, indptr, rows, cols)
}

// FromDense compresses a row-major dense matrix into CSR form.
func FromDense(values []float64, rows, cols int) (*CSRMatrix, error) {
	return sparse.FromDense(values, rows, cols)
}

// FromDenseCSC compresses a row-major dense matrix into CSC form.
func FromDenseCSC(values []float64, rows, cols int) (*CSCMatrix, error) {
	return sparse.FromDenseCSC(values, rows, cols)
}

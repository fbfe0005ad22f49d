package sparse

import (
	"fmt"

	"github.com/born-ml/lazymat/internal/tensor"
)

// FromDense compresses a row-major dense matrix into CSR form, keeping only
// non-zero values. Indices and indptr use int32, the narrowest common layout.
func FromDense(values []float64, rows, cols int) (*CSRMatrix, error) {
	data, indices, indptr, err := compress(values, rows, cols, rows, func(major, minor int) int {
		return major*cols + minor
	}, cols)
	if err != nil {
		return nil, err
	}
	return NewCSRMatrix(data, indices, indptr, rows, cols)
}

// FromDenseCSC compresses a row-major dense matrix into CSC form.
func FromDenseCSC(values []float64, rows, cols int) (*CSCMatrix, error) {
	data, indices, indptr, err := compress(values, rows, cols, cols, func(major, minor int) int {
		return minor*cols + major
	}, rows)
	if err != nil {
		return nil, err
	}
	return NewCSCMatrix(data, indices, indptr, rows, cols)
}

func compress(values []float64, rows, cols, major int, at func(major, minor int) int, minor int) (data, indices, indptr *tensor.Array, err error) {
	if len(values) != rows*cols {
		return nil, nil, nil, fmt.Errorf("sparse: %d values for shape (%d, %d)", len(values), rows, cols)
	}

	var vals []float64
	var idx []int32
	ptr := make([]int32, 0, major+1)
	ptr = append(ptr, 0)
	for i := 0; i < major; i++ {
		for j := 0; j < minor; j++ {
			if v := values[at(i, j)]; v != 0 {
				vals = append(vals, v)
				idx = append(idx, int32(j)) //nolint:gosec // G115: minor axis fits int32 for FromDense inputs
			}
		}
		ptr = append(ptr, int32(len(vals))) //nolint:gosec // G115: nnz fits int32 for FromDense inputs
	}
	return tensor.Vector(vals), tensor.Vector(idx), tensor.Vector(ptr), nil
}

package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/lazymat/internal/tensor"
)

func TestNewCSRMatrix(t *testing.T) {
	m, err := NewCSRMatrix(
		tensor.Vector([]float64{1, 2, 3}),
		tensor.Vector([]int32{0, 2, 1}),
		tensor.Vector([]int64{0, 2, 3}),
		2, 3,
	)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NNZ())
	assert.Equal(t, tensor.Shape{2, 3}, m.Shape())
}

func TestValidate(t *testing.T) {
	vals := tensor.Vector([]float64{1, 2})
	idx := tensor.Vector([]int32{0, 1})
	ptr := tensor.Vector([]int32{0, 1, 2})
	grid, err := tensor.FromSlice([]int32{0, 1, 2, 0}, tensor.Shape{2, 2})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    *tensor.Array
		indices *tensor.Array
		indptr  *tensor.Array
		rows    int
		wantErr string
	}{
		{"missing buffer", vals, nil, ptr, 2, "required"},
		{"2-D indices", vals, grid, ptr, 2, "indices must be 1-dimensional"},
		{"float indices", vals, tensor.Vector([]float64{0, 1}), ptr, 2, "integer arrays"},
		{"length mismatch", vals, tensor.Vector([]int32{0}), ptr, 2, "2 values but 1 indices"},
		{"short indptr", vals, idx, tensor.Vector([]int32{0, 2}), 2, "indptr has 2 entries, want 3"},
		{"indptr total", vals, idx, tensor.Vector([]int32{0, 1, 1}), 2, "indptr ends at 1, want 2"},
		{"negative shape", vals, idx, ptr, -1, "invalid shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSRArray(tt.data, tt.indices, tt.indptr, tt.rows, 2)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCSCUsesColumnsAsMajorAxis(t *testing.T) {
	// 2x3 matrix: one entry per column.
	_, err := NewCSCMatrix(
		tensor.Vector([]float64{1, 2, 3}),
		tensor.Vector([]int32{0, 1, 0}),
		tensor.Vector([]int32{0, 1, 2, 3}),
		2, 3,
	)
	require.NoError(t, err)

	_, err = NewCSCArray(
		tensor.Vector([]float64{1, 2, 3}),
		tensor.Vector([]int32{0, 1, 0}),
		tensor.Vector([]int32{0, 1, 3}),
		2, 3,
	)
	assert.Error(t, err, "CSC indptr must have cols+1 entries")
}

func TestFromDense(t *testing.T) {
	m, err := FromDense([]float64{
		0, 5, 0,
		7, 0, 8,
	}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, m.NNZ())
	assert.Equal(t, []float64{5, 7, 8}, m.Data.AsFloat64())
	assertInts(t, m.Indices, 1, 0, 2)
	assertInts(t, m.Indptr, 0, 1, 3)
}

func TestFromDenseCSC(t *testing.T) {
	m, err := FromDenseCSC([]float64{
		0, 5, 0,
		7, 0, 8,
	}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{7, 5, 8}, m.Data.AsFloat64())
	assertInts(t, m.Indices, 1, 0, 1)
	assertInts(t, m.Indptr, 0, 1, 2, 3)
}

func TestFromDenseAllZero(t *testing.T) {
	m, err := FromDense(make([]float64, 4), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())
	assertInts(t, m.Indptr, 0, 0, 0)
}

func TestFromDenseLengthMismatch(t *testing.T) {
	_, err := FromDense([]float64{1, 2, 3}, 2, 2)
	assert.Error(t, err)
}

func assertInts(t *testing.T, a *tensor.Array, want ...int64) {
	t.Helper()
	require.Equal(t, len(want), a.NumElements())
	for k, w := range want {
		v, err := a.Int64At(k)
		require.NoError(t, err)
		assert.Equal(t, w, v, "element %d", k)
	}
}

func TestValidateStructLiteral(t *testing.T) {
	c := Compressed{
		Data:    tensor.Vector([]float64{1, 2}),
		Indices: tensor.Vector([]int32{0, 1}),
		Indptr:  tensor.Vector([]uint64{0, 2}),
		Rows:    1000,
		Cols:    2,
	}
	assert.ErrorContains(t, c.Validate(c.Rows), "indptr has 2 entries, want 1001")
	assert.NoError(t, c.Validate(1))

	c.Data = nil
	assert.ErrorContains(t, c.Validate(1), "required")
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/lazymat/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for array element types.
type DType = tensor.DType

// DataType represents the element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
	Int8    DataType = tensor.Int8
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} is a matrix with 2 rows and 3 columns.
type Shape = tensor.Shape

// Array is a strided view over host memory.
type Array = tensor.Array

// New allocates a zero-filled row-major array.
func New(shape Shape, dtype DataType) (*Array, error) {
	return tensor.New(shape, dtype)
}

// FromSlice wraps data as a row-major array without copying it.
//
// Example:
//
//	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// FromSliceColMajor wraps data as a column-major array without copying it.
func FromSliceColMajor[T DType](data []T, shape Shape) (*Array, error) {
	return tensor.FromSliceColMajor(data, shape)
}

// Vector wraps data as a 1-dimensional array without copying it.
func Vector[T DType](data []T) *Array {
	return tensor.Vector(data)
}

// ParseDataType returns the DataType for a dtype tag such as "float64".
func ParseDataType(tag string) (DataType, bool) {
	return tensor.ParseDataType(tag)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the host arrays that seed lazy matrix expressions.
//
// # Overview
//
// An Array is a view over a block of host memory with a shape, strides and
// an element type. Arrays never own a copy of caller data: FromSlice and
// FromSliceColMajor alias the slice they are given, so the slice must not
// be resized while the array is in use.
//
// # Basic Usage
//
//	import "github.com/born-ml/lazymat/tensor"
//
//	func main() {
//	    a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    at := a.T() // column-major view, no copy
//	}
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - int8, int32, int64 (signed integers)
//   - uint8, uint32, uint64 (unsigned integers)
//   - bool (boolean masks)
//
// # Layout
//
// A two-dimensional array is either row-major contiguous, column-major
// contiguous, or strided. Only the first two can be handed to a native
// backend directly; see Array.IsRowMajor and Array.IsColMajor.
package tensor

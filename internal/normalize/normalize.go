// Package normalize converts caller-supplied arrays into the representations
// native backends accept: contiguous layouts, uint64 offsets and indices, and
// float64 vectors. Inputs are never modified; a conversion always allocates
// a fresh array and reports that it did so.
package normalize

import (
	"errors"
	"fmt"

	"github.com/born-ml/lazymat/internal/lazy"
	"github.com/born-ml/lazymat/internal/tensor"
)

// ErrNonContiguous is returned by Layout for arrays that are neither
// row-major nor column-major contiguous.
var ErrNonContiguous = errors.New("normalize: array must have contiguous storage")

// Layout reports whether a contiguous array is row-major. Row-major wins for
// shapes that are contiguous both ways (a single row or column).
func Layout(a *tensor.Array) (rowMajor bool, err error) {
	switch {
	case a.IsRowMajor():
		return true, nil
	case a.IsColMajor():
		return false, nil
	default:
		return false, ErrNonContiguous
	}
}

// Uint64 returns a 1-D contiguous uint64 array holding the values of a.
// When a already has that representation it is returned with copied=false.
// Negative values cannot be represented and are rejected.
func Uint64(a *tensor.Array) (out *tensor.Array, copied bool, err error) {
	if a.DType() == tensor.Uint64 && a.NDim() == 1 && a.IsRowMajor() {
		return a, false, nil
	}
	n := a.NumElements()
	values := make([]uint64, n)
	for k := 0; k < n; k++ {
		v, err := a.Int64At(k)
		if err != nil {
			return nil, false, fmt.Errorf("normalize: %w", err)
		}
		if v < 0 {
			return nil, false, fmt.Errorf("normalize: negative offset %d at position %d", v, k)
		}
		values[k] = uint64(v)
	}
	return tensor.Vector(values), true, nil
}

// Float64 returns a 1-D contiguous float64 array holding the values of a.
// When a already has that representation it is returned with copied=false.
func Float64(a *tensor.Array) (out *tensor.Array, copied bool) {
	if a.DType() == tensor.Float64 && a.NDim() == 1 && a.IsRowMajor() {
		return a, false
	}
	n := a.NumElements()
	values := make([]float64, n)
	for k := 0; k < n; k++ {
		values[k] = a.Float64At(k)
	}
	return tensor.Vector(values), true
}

// Indices resolves sel against a dimension of length n.
//
// The result is a uint64 array of canonical positions. noop is true when the
// selection is exactly 0..n-1 in order, in which case idx is nil and the
// dimension needs no wrapping at all.
func Indices(sel lazy.Selector, n int) (idx *tensor.Array, noop bool, err error) {
	if sel == nil {
		return nil, true, nil
	}
	positions, err := sel.Resolve(n)
	if err != nil {
		return nil, false, err
	}
	if positions == nil || isIdentity(positions, n) {
		return nil, true, nil
	}
	values := make([]uint64, len(positions))
	for i, p := range positions {
		values[i] = uint64(p) //nolint:gosec // G115: Resolve only returns non-negative positions
	}
	return tensor.Vector(values), false, nil
}

func isIdentity(positions []int, n int) bool {
	if len(positions) != n {
		return false
	}
	for i, p := range positions {
		if p != i {
			return false
		}
	}
	return true
}

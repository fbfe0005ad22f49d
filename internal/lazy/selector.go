package lazy

import (
	"fmt"
	"math"
)

// Selector describes which positions of one dimension a Subset keeps.
//
// The set of selectors is closed: All, Indices, Mask and Slice.
type Selector interface {
	// Resolve returns the canonical non-negative positions for a dimension
	// of length n. A nil result with no error means the whole dimension.
	Resolve(n int) ([]int, error)
	selector()
}

// IndexError reports a selector that does not fit the dimension it is applied to.
type IndexError struct {
	Index  int
	Length int
	Reason string
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Reason != "" {
		return "lazy: " + e.Reason
	}
	return fmt.Sprintf("lazy: index %d out of range for dimension of length %d", e.Index, e.Length)
}

// All keeps every position of a dimension in order.
type All struct{}

// Resolve implements Selector.
func (All) Resolve(int) ([]int, error) { return nil, nil }

func (All) selector() {}

// Indices keeps the listed positions in the listed order. Negative values
// count from the end of the dimension; duplicates are allowed.
type Indices []int

// Resolve implements Selector.
func (ix Indices) Resolve(n int) ([]int, error) {
	out := make([]int, len(ix))
	for i, v := range ix {
		if v < 0 {
			v += n
		}
		if v < 0 || v >= n {
			return nil, &IndexError{Index: ix[i], Length: n}
		}
		out[i] = v
	}
	return out, nil
}

func (Indices) selector() {}

// Mask keeps the positions whose entry is true. Its length must equal the dimension.
type Mask []bool

// Resolve implements Selector.
func (m Mask) Resolve(n int) ([]int, error) {
	if len(m) != n {
		return nil, &IndexError{
			Length: n,
			Reason: fmt.Sprintf("boolean mask of length %d does not match dimension of length %d", len(m), n),
		}
	}
	out := make([]int, 0, n)
	for i, keep := range m {
		if keep {
			out = append(out, i)
		}
	}
	return out, nil
}

func (Mask) selector() {}

// End is a Slice bound meaning "past the last position" for a positive
// step, or "before the first position" for a negative step.
const End = math.MaxInt

// Slice keeps Start, Start+Step, ... up to but excluding Stop, with the
// usual clamping: negative bounds count from the end and out-of-range
// bounds are clipped. A zero Step is treated as 1.
type Slice struct {
	Start int
	Stop  int
	Step  int
}

// Resolve implements Selector.
func (s Slice) Resolve(n int) ([]int, error) {
	step := s.Step
	if step == 0 {
		step = 1
	}

	var start, stop int
	if step > 0 {
		start = clampBound(s.Start, n, 0, n)
		stop = n
		if s.Stop != End {
			stop = clampBound(s.Stop, n, 0, n)
		}
	} else {
		start = n - 1
		if s.Start != End {
			start = clampBound(s.Start, n, -1, n-1)
		}
		stop = -1
		if s.Stop != End {
			stop = clampBound(s.Stop, n, -1, n-1)
		}
	}

	out := []int{}
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		out = append(out, i)
	}
	return out, nil
}

func (Slice) selector() {}

func clampBound(v, n, lo, hi int) int {
	if v < 0 {
		v += n
	}
	return max(lo, min(v, hi))
}

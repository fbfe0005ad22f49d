package tensor

import (
	"fmt"
	"math"
	"unsafe"
)

// storage is the backing allocation shared by an array and all of its views.
type storage struct {
	data []byte
}

// Array is a strided n-dimensional view over host memory.
//
// Views created with View or T share storage with their parent, so an Array
// is only ever a window: its strides and offset are counted in elements.
type Array struct {
	store  *storage
	shape  Shape
	stride []int
	dtype  DataType
	offset int
}

// New allocates a zero-filled row-major array.
func New(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Array{
		store:  &storage{data: make([]byte, shape.NumElements()*dtype.Size())},
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice wraps data as a row-major array without copying it.
// The array aliases data: writes through either are visible to both.
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	return wrap(data, shape, shape.ComputeStrides())
}

// FromSliceColMajor wraps data as a column-major (Fortran order) array without copying it.
func FromSliceColMajor[T DType](data []T, shape Shape) (*Array, error) {
	return wrap(data, shape, shape.ComputeColMajorStrides())
}

// Vector wraps data as a 1-dimensional array without copying it.
func Vector[T DType](data []T) *Array {
	a, err := wrap(data, Shape{len(data)}, []int{1})
	if err != nil {
		panic(err) // a 1-D shape built from len() is always valid
	}
	return a
}

func wrap[T DType](data []T, shape Shape, strides []int) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("data length %d does not match shape %v", len(data), shape)
	}
	var dummy T
	dtype := inferDataType(dummy)
	var raw []byte
	if len(data) > 0 {
		//nolint:gosec // G103: zero-copy reinterpretation of caller memory
		raw = unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*dtype.Size())
	}
	return &Array{
		store:  &storage{data: raw},
		shape:  shape.Clone(),
		stride: strides,
		dtype:  dtype,
	}, nil
}

// View returns a new array over the same storage with the given shape, strides
// and element offset. Every addressable element must lie inside the storage.
func (a *Array) View(shape Shape, strides []int, offset int) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("view: %d strides for %d dimensions", len(strides), len(shape))
	}
	if shape.NumElements() > 0 {
		lo, hi := offset, offset
		for i, dim := range shape {
			span := (dim - 1) * strides[i]
			if span < 0 {
				lo += span
			} else {
				hi += span
			}
		}
		capacity := len(a.store.data) / a.dtype.Size()
		if lo < 0 || hi >= capacity {
			return nil, fmt.Errorf("view: elements [%d, %d] outside storage of %d elements", lo, hi, capacity)
		}
	}
	return &Array{
		store:  a.store,
		shape:  shape.Clone(),
		stride: append([]int(nil), strides...),
		dtype:  a.dtype,
		offset: offset,
	}, nil
}

// T returns the transposed view of a 2-dimensional array. No data is moved.
func (a *Array) T() *Array {
	if len(a.shape) != 2 {
		panic(fmt.Sprintf("tensor: T requires 2 dimensions, got %d", len(a.shape)))
	}
	return &Array{
		store:  a.store,
		shape:  Shape{a.shape[1], a.shape[0]},
		stride: []int{a.stride[1], a.stride[0]},
		dtype:  a.dtype,
		offset: a.offset,
	}
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's strides in elements.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the array's data type.
func (a *Array) DType() DataType {
	return a.dtype
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// IsRowMajor reports whether the array is contiguous in row-major (C) order.
func (a *Array) IsRowMajor() bool {
	return a.shape.stridesMatch(a.stride, a.shape.ComputeStrides())
}

// IsColMajor reports whether the array is contiguous in column-major (Fortran) order.
func (a *Array) IsColMajor() bool {
	return a.shape.stridesMatch(a.stride, a.shape.ComputeColMajorStrides())
}

// Ptr returns the address of the first element, or nil for an empty array.
// The address is only valid while the array (or a view of it) is reachable.
func (a *Array) Ptr() unsafe.Pointer {
	if a.NumElements() == 0 || len(a.store.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&a.store.data[a.offset*a.dtype.Size()]) //nolint:gosec // G103: native handoff
}

// SameStorage reports whether two arrays are views of one allocation.
func (a *Array) SameStorage(other *Array) bool {
	return other != nil && a.store == other.store
}

// position maps the k-th element in row-major logical order to a storage index.
func (a *Array) position(k int) int {
	pos := a.offset
	for i := len(a.shape) - 1; i >= 0; i-- {
		dim := a.shape[i]
		pos += (k % dim) * a.stride[i]
		k /= dim
	}
	return pos
}

func (a *Array) elem(pos int) unsafe.Pointer {
	return unsafe.Pointer(&a.store.data[pos*a.dtype.Size()]) //nolint:gosec // G103: typed element access
}

// Float64At returns the k-th element (row-major logical order) converted to float64.
func (a *Array) Float64At(k int) float64 {
	p := a.elem(a.position(k))
	switch a.dtype {
	case Float32:
		return float64(*(*float32)(p))
	case Float64:
		return *(*float64)(p)
	case Int8:
		return float64(*(*int8)(p))
	case Int32:
		return float64(*(*int32)(p))
	case Int64:
		return float64(*(*int64)(p))
	case Uint8:
		return float64(*(*uint8)(p))
	case Uint32:
		return float64(*(*uint32)(p))
	case Uint64:
		return float64(*(*uint64)(p))
	case Bool:
		if *(*bool)(p) {
			return 1
		}
		return 0
	default:
		panic("unknown data type")
	}
}

// Int64At returns the k-th element (row-major logical order) as an int64.
// Floating-point elements must hold integral values; bool maps to 0/1.
func (a *Array) Int64At(k int) (int64, error) {
	p := a.elem(a.position(k))
	switch a.dtype {
	case Int8:
		return int64(*(*int8)(p)), nil
	case Int32:
		return int64(*(*int32)(p)), nil
	case Int64:
		return *(*int64)(p), nil
	case Uint8:
		return int64(*(*uint8)(p)), nil
	case Uint32:
		return int64(*(*uint32)(p)), nil
	case Uint64:
		v := *(*uint64)(p)
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("element %d: %d overflows int64", k, v)
		}
		return int64(v), nil
	case Bool:
		if *(*bool)(p) {
			return 1, nil
		}
		return 0, nil
	case Float32, Float64:
		f := a.Float64At(k)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("element %d: %v is not an integer", k, f)
		}
		return int64(f), nil
	default:
		panic("unknown data type")
	}
}

// BoolAt returns the k-th element (row-major logical order) as a truth value.
func (a *Array) BoolAt(k int) bool {
	if a.dtype == Bool {
		return *(*bool)(a.elem(a.position(k)))
	}
	return a.Float64At(k) != 0
}

// AsFloat64 interprets a contiguous row-major array as []float64.
// Panics if the dtype is not Float64 or the array is not row-major.
func (a *Array) AsFloat64() []float64 {
	a.mustContiguous(Float64)
	if a.NumElements() == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(a.Ptr()), a.NumElements()) //nolint:gosec // G103: zero-copy view
}

// AsUint64 interprets a contiguous row-major array as []uint64.
// Panics if the dtype is not Uint64 or the array is not row-major.
func (a *Array) AsUint64() []uint64 {
	a.mustContiguous(Uint64)
	if a.NumElements() == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(a.Ptr()), a.NumElements()) //nolint:gosec // G103: zero-copy view
}

func (a *Array) mustContiguous(dtype DataType) {
	if a.dtype != dtype {
		panic(fmt.Sprintf("array dtype is %s, not %s", a.dtype, dtype))
	}
	if !a.IsRowMajor() {
		panic("array is not contiguous in row-major order")
	}
}

// String returns a compact description of the array's layout.
func (a *Array) String() string {
	return fmt.Sprintf("Array(%s, shape=%v, strides=%v)", a.dtype, a.shape, a.stride)
}

package host

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/lazymat/internal/tensor"
)

// region is a typed window of host memory recorded by address only.
//
// Like a foreign library, the host backend does not hold Go references to
// the buffers it is given: it keeps a bare uintptr. The memory stays valid
// only while the caller keeps the owning object reachable.
type region struct {
	addr  uintptr
	dtype tensor.DataType
	n     int
}

func newRegion(p unsafe.Pointer, dtypeTag string, n int) (region, error) {
	dtype, ok := tensor.ParseDataType(dtypeTag)
	if !ok {
		return region{}, fmt.Errorf("host: unknown dtype %q", dtypeTag)
	}
	if n > 0 && p == nil {
		return region{}, fmt.Errorf("host: nil %s buffer for %d elements", dtypeTag, n)
	}
	return region{addr: uintptr(p), dtype: dtype, n: n}, nil
}

func (r region) ptr(k int) unsafe.Pointer {
	//nolint:govet,gosec // address is kept alive by the caller's anchors
	return unsafe.Pointer(r.addr + uintptr(k*r.dtype.Size()))
}

// float returns element k converted to float64.
func (r region) float(k int) float64 {
	p := r.ptr(k)
	switch r.dtype {
	case tensor.Float32:
		return float64(*(*float32)(p))
	case tensor.Float64:
		return *(*float64)(p)
	case tensor.Int8:
		return float64(*(*int8)(p))
	case tensor.Int32:
		return float64(*(*int32)(p))
	case tensor.Int64:
		return float64(*(*int64)(p))
	case tensor.Uint8:
		return float64(*(*uint8)(p))
	case tensor.Uint32:
		return float64(*(*uint32)(p))
	case tensor.Uint64:
		return float64(*(*uint64)(p))
	case tensor.Bool:
		if *(*bool)(p) {
			return 1
		}
		return 0
	default:
		panic("host: unknown data type")
	}
}

// index returns element k of an integer region as an int.
func (r region) index(k int) int {
	p := r.ptr(k)
	switch r.dtype {
	case tensor.Int8:
		return int(*(*int8)(p))
	case tensor.Int32:
		return int(*(*int32)(p))
	case tensor.Int64:
		return int(*(*int64)(p))
	case tensor.Uint8:
		return int(*(*uint8)(p))
	case tensor.Uint32:
		return int(*(*uint32)(p))
	case tensor.Uint64:
		return int(*(*uint64)(p)) //nolint:gosec // G115: offsets are bounded by nnz
	default:
		panic(fmt.Sprintf("host: %s is not an index type", r.dtype))
	}
}

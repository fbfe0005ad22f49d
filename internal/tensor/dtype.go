// Package tensor provides the host-side array types that seed matrix compilation.
package tensor

import "reflect"

// DType is a constraint for supported element types.
type DType interface {
	~float32 | ~float64 | ~int8 | ~int32 | ~int64 | ~uint8 | ~uint32 | ~uint64 | ~bool
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
	Int8
	Uint32
	Uint64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64, Int64, Uint64:
		return 8
	case Float32, Int32, Uint32:
		return 4
	case Uint8, Int8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns the short tag understood by native backends ("float64", "int32", ...).
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	default:
		return "unknown"
	}
}

// IsInteger reports whether the type is a signed or unsigned integer type.
func (dt DataType) IsInteger() bool {
	switch dt {
	case Int8, Int32, Int64, Uint8, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// ParseDataType returns the DataType for a short tag produced by String.
func ParseDataType(tag string) (DataType, bool) {
	for dt := Float32; dt <= Uint64; dt++ {
		if dt.String() == tag {
			return dt, true
		}
	}
	return 0, false
}

// inferDataType infers DataType from a generic type T. The underlying kind
// decides, so named types such as `type celsius float64` are accepted.
func inferDataType[T DType](dummy T) DataType {
	switch reflect.TypeOf(dummy).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int8:
		return Int8
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Bool:
		return Bool
	default:
		panic("unsupported type")
	}
}

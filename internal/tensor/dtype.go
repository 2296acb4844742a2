// Package tensor implements a dense N-dimensional strided array.
package tensor

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Numeric is the constraint for array element types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Int
	Uint
	Uintptr
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64, Int, Uint, Uintptr:
		return 8
	default:
		panic("unknown data type")
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Uintptr:
		return "uintptr"
	default:
		return "unknown"
	}
}

// ParseDataType is the inverse of DataType.String.
func ParseDataType(s string) (DataType, bool) {
	for dt := Float32; dt <= Uintptr; dt++ {
		if dt.String() == s {
			return dt, true
		}
	}
	return 0, false
}

// DTypeOf returns the DataType of T.
// Named types resolve through their underlying kind.
func DTypeOf[T Numeric]() DataType {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Int:
		return Int
	case reflect.Uint:
		return Uint
	case reflect.Uintptr:
		return Uintptr
	default:
		panic("unsupported type")
	}
}

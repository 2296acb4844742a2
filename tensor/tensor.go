// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/strided/internal/tensor"
)

// Type aliases for public API

// Numeric is the constraint for array element types: every Go integer and
// floating-point type, including named types over them.
type Numeric = tensor.Numeric

// DataType represents the runtime element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Int     DataType = tensor.Int
	Uint    DataType = tensor.Uint
	Uintptr DataType = tensor.Uintptr
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Array is an immutable N-dimensional strided array.
type Array[T Numeric] = tensor.Array[T]

// Error types.
type (
	ShapeError         = tensor.ShapeError
	DataLengthError    = tensor.DataLengthError
	IndexError         = tensor.IndexError
	FlatIndexError     = tensor.FlatIndexError
	ShapeMismatchError = tensor.ShapeMismatchError
	AxesError          = tensor.AxesError
)

// Sentinel errors.
var (
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrDataLength       = tensor.ErrDataLength
	ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrInvalidAxes      = tensor.ErrInvalidAxes
	ErrDivisionByZero   = tensor.ErrDivisionByZero
	ErrSingularMatrix   = tensor.ErrSingularMatrix
)

// Creation functions

// New creates a zero-filled row-major array.
//
// Example:
//
//	x, err := tensor.New[float32](tensor.Shape{3, 7}) // stride [7, 1]
func New[T Numeric](shape Shape) (*Array[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a row-major array from data in row-major order.
// len(data) must equal the number of elements of shape.
//
// Example:
//
//	x, err := tensor.FromSlice(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
func FromSlice[T Numeric](shape Shape, data []T) (*Array[T], error) {
	return tensor.FromSlice(shape, data)
}

// Full creates a row-major array filled with value.
func Full[T Numeric](shape Shape, value T) (*Array[T], error) {
	return tensor.Full(shape, value)
}

// Arange creates a row-major array holding 0, 1, ..., n-1.
func Arange[T Numeric](shape Shape) (*Array[T], error) {
	return tensor.Arange[T](shape)
}

// Scalar creates a rank-0 array.
func Scalar[T Numeric](v T) *Array[T] {
	return tensor.Scalar(v)
}

// DTypeOf returns the DataType of T.
func DTypeOf[T Numeric]() DataType {
	return tensor.DTypeOf[T]()
}

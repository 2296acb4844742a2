package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrDataLength       = errors.New("data length does not match shape")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrInvalidAxes      = errors.New("invalid axis permutation")
	ErrDivisionByZero   = errors.New("integer division by zero")

	// ErrSingularMatrix is reserved for an inversion operation. Nothing in
	// this package returns it.
	ErrSingularMatrix = errors.New("singular matrix")
)

// ShapeError reports a non-positive extent in a requested shape, or a
// shape whose element count overflows int (Overflow set).
type ShapeError struct {
	Shape    Shape
	Axis     int // Offending axis
	Overflow bool
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("invalid shape %v: element count overflows int at dimension %d", []int(e.Shape), e.Axis)
	}
	return fmt.Sprintf("invalid shape %v: dimension %d is %d (must be > 0)", []int(e.Shape), e.Axis, e.Shape[e.Axis])
}

// Unwrap returns ErrInvalidShape.
func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

// DataLengthError reports a flat data slice whose length differs from the
// element count of the shape.
type DataLengthError struct {
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *DataLengthError) Error() string {
	return fmt.Sprintf("data length mismatch: shape requires %d elements, got %d", e.Expected, e.Actual)
}

// Unwrap returns ErrDataLength.
func (e *DataLengthError) Unwrap() error { return ErrDataLength }

// IndexError reports a multi-index component outside its axis.
// Axis is -1 when the index has the wrong number of components; Index then
// holds the component count and Bound the rank.
type IndexError struct {
	Axis  int
	Index int
	Bound int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("index out of bounds: expected %d indices, got %d", e.Bound, e.Index)
	}
	return fmt.Sprintf("index out of bounds: index %d on axis %d (size %d)", e.Index, e.Axis, e.Bound)
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// FlatIndexError reports a flat index or buffer offset outside [0, Bound).
type FlatIndexError struct {
	Flat  int
	Bound int
}

// Error implements the error interface.
func (e *FlatIndexError) Error() string {
	return fmt.Sprintf("index out of bounds: flat index %d (size %d)", e.Flat, e.Bound)
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *FlatIndexError) Unwrap() error { return ErrIndexOutOfBounds }

// ShapeMismatchError reports operands of a binary elementwise operation
// whose shapes differ.
type ShapeMismatchError struct {
	A Shape
	B Shape
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %v vs %v", []int(e.A), []int(e.B))
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// AxesError reports an argument to Permute that is not a permutation of
// 0..Rank-1.
type AxesError struct {
	Axes []int
	Rank int
}

// Error implements the error interface.
func (e *AxesError) Error() string {
	return fmt.Sprintf("invalid axis permutation %v for rank %d", e.Axes, e.Rank)
}

// Unwrap returns ErrInvalidAxes.
func (e *AxesError) Unwrap() error { return ErrInvalidAxes }

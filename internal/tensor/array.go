package tensor

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Array is a dense N-dimensional array of T with an explicit stride per axis.
//
// Arrays are immutable values: every transform returns a new Array and no
// method writes to an existing buffer. Reinterpretations such as Transpose
// share the source buffer read-only.
//
// The element at multi-index (i0, ..., ik) lives at buffer position
// i0*stride[0] + ... + ik*stride[k].
type Array[T Numeric] struct {
	buf    *buffer[T]
	shape  Shape
	stride []int
}

// New creates a zero-filled row-major array.
//
// Example:
//
//	a, err := tensor.New[float32](tensor.Shape{3, 7}) // stride [7, 1]
func New[T Numeric](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array[T]{
		buf:    newBuffer[T](shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a row-major array from flat data in row-major order.
// The slice is copied.
func FromSlice[T Numeric](shape Shape, data []T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, &DataLengthError{Expected: n, Actual: len(data)}
	}
	return &Array[T]{
		buf:    bufferFrom(data),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Full creates a row-major array with every element set to value.
func Full[T Numeric](shape Shape, value T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = value
	}
	return a, nil
}

// Arange creates a row-major array holding 0, 1, ..., n-1.
func Arange[T Numeric](shape Shape) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = T(i)
	}
	return a, nil
}

// Scalar creates a rank-0 array holding v.
func Scalar[T Numeric](v T) *Array[T] {
	return &Array[T]{
		buf:    bufferFrom([]T{v}),
		shape:  Shape{},
		stride: []int{},
	}
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's strides.
func (a *Array[T]) Strides() []int {
	return slices.Clone(a.stride)
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.shape.NumElements()
}

// DType returns the runtime data type of T.
func (a *Array[T]) DType() DataType {
	return DTypeOf[T]()
}

// IsContiguous reports whether the strides are the row-major strides of
// the shape, i.e. buffer order equals logical order.
func (a *Array[T]) IsContiguous() bool {
	for axis, s := range a.shape.ComputeStrides() {
		if a.shape[axis] > 1 && a.stride[axis] != s {
			return false
		}
	}
	return true
}

// SharesBuffer reports whether a and other read the same buffer.
func (a *Array[T]) SharesBuffer(other *Array[T]) bool {
	return a.buf == other.buf
}

// Offset returns the buffer position of a multi-index.
func (a *Array[T]) Offset(index ...int) (int, error) {
	if len(index) != len(a.shape) {
		return 0, &IndexError{Axis: -1, Index: len(index), Bound: len(a.shape)}
	}
	offset := 0
	for axis, idx := range index {
		if idx < 0 || idx >= a.shape[axis] {
			return 0, &IndexError{Axis: axis, Index: idx, Bound: a.shape[axis]}
		}
		offset += idx * a.stride[axis]
	}
	return offset, nil
}

// At returns the element at the given multi-index.
//
// Example:
//
//	a, _ := tensor.Arange[int](tensor.Shape{3, 4})
//	v, err := a.At(1, 2) // 6
func (a *Array[T]) At(index ...int) (T, error) {
	offset, err := a.Offset(index...)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.buf.data[offset], nil
}

// AtFlat returns the flat-th element in logical row-major order.
//
// flat is decomposed into per-axis coordinates by division and remainder
// against the row-major strides of the current shape, outermost axis
// first. The coordinates are then recomposed against the current strides,
// so the result follows the axis order of a transposed or permuted array
// rather than buffer order.
func (a *Array[T]) AtFlat(flat int) (T, error) {
	var zero T
	n := a.NumElements()
	if flat < 0 || flat >= n {
		return zero, &FlatIndexError{Flat: flat, Bound: n}
	}
	offset := 0
	rem := flat
	for axis, s := range a.shape.ComputeStrides() {
		offset += (rem / s) * a.stride[axis]
		rem %= s
	}
	return a.buf.data[offset], nil
}

// Unravel returns the multi-index stored at a buffer offset, so that
// Offset(Unravel(off)...) == off.
//
// Axes are visited in descending stride order, taking coord = rem/stride
// and rem %= stride at each step. Axes of extent 1 always map to 0.
func (a *Array[T]) Unravel(offset int) ([]int, error) {
	n := a.NumElements()
	if offset < 0 || offset >= n {
		return nil, &FlatIndexError{Flat: offset, Bound: n}
	}

	axes := make([]int, 0, len(a.shape))
	for axis, dim := range a.shape {
		if dim > 1 {
			axes = append(axes, axis)
		}
	}
	slices.SortStableFunc(axes, func(x, y int) int {
		return cmp.Compare(a.stride[y], a.stride[x])
	})

	index := make([]int, len(a.shape))
	rem := offset
	for _, axis := range axes {
		index[axis] = rem / a.stride[axis]
		rem %= a.stride[axis]
	}
	return index, nil
}

// With returns a row-major copy of the array with one element replaced.
// The receiver is left untouched.
func (a *Array[T]) With(value T, index ...int) (*Array[T], error) {
	if _, err := a.Offset(index...); err != nil {
		return nil, err
	}
	out := &Array[T]{
		buf:    &buffer[T]{data: a.Data()},
		shape:  a.shape.Clone(),
		stride: a.shape.ComputeStrides(),
	}
	offset, _ := out.Offset(index...)
	out.buf.data[offset] = value
	return out, nil
}

// Data returns a copy of the elements in logical row-major order.
func (a *Array[T]) Data() []T {
	out := make([]T, a.NumElements())
	walk(a.shape, 0, len(out), func(pos int, offs []int) {
		out[pos] = a.buf.data[offs[0]]
	}, a.stride)
	return out
}

// Contiguous returns a row-major array with the same logical contents.
// A contiguous receiver is returned as is.
func (a *Array[T]) Contiguous() *Array[T] {
	if a.IsContiguous() {
		return a
	}
	return &Array[T]{
		buf:    &buffer[T]{data: a.Data()},
		shape:  a.shape.Clone(),
		stride: a.shape.ComputeStrides(),
	}
}

// All iterates over every element in logical row-major order, yielding
// its multi-index and value. The index slice is reused between steps.
func (a *Array[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		n := a.NumElements()
		index := make([]int, len(a.shape))
		for pos := 0; pos < n; pos++ {
			offset := 0
			for axis, s := range a.stride {
				offset += index[axis] * s
			}
			if !yield(index, a.buf.data[offset]) {
				return
			}
			for axis := len(index) - 1; axis >= 0; axis-- {
				index[axis]++
				if index[axis] < a.shape[axis] {
					break
				}
				index[axis] = 0
			}
		}
	}
}

// Equal reports whether both arrays have the same shape and the same
// elements in logical order. Strides are not compared. A nil other is
// never equal.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if other == nil || !a.shape.Equal(other.shape) {
		return false
	}
	equal := true
	walk(a.shape, 0, a.NumElements(), func(_ int, offs []int) {
		if a.buf.data[offs[0]] != other.buf.data[offs[1]] {
			equal = false
		}
	}, a.stride, other.stride)
	return equal
}

// String returns a short description such as "Array[float32](2, 3)".
func (a *Array[T]) String() string {
	dims := make([]string, len(a.shape))
	for i, d := range a.shape {
		dims[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("Array[%s](%s)", a.DType(), strings.Join(dims, ", "))
}

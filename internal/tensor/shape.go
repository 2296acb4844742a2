package tensor

import "math"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements in the array.
// The result is only meaningful for a shape that passes Validate.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is > 0 and that the element count
// fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return &ShapeError{Shape: s.Clone(), Axis: i}
		}
		if dim > math.MaxInt/n {
			return &ShapeError{Shape: s.Clone(), Axis: i, Overflow: true}
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape:
// stride[i] is the product of all dimensions after i, and the last stride is 1.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// permute returns s reordered so that result[i] = s[axes[i]].
func permute(s []int, axes []int) []int {
	out := make([]int, len(axes))
	for i, a := range axes {
		out[i] = s[a]
	}
	return out
}

// validateAxes checks that axes is a permutation of 0..rank-1.
func validateAxes(axes []int, rank int) error {
	if len(axes) != rank {
		return &AxesError{Axes: append([]int(nil), axes...), Rank: rank}
	}
	seen := make([]bool, rank)
	for _, a := range axes {
		if a < 0 || a >= rank || seen[a] {
			return &AxesError{Axes: append([]int(nil), axes...), Rank: rank}
		}
		seen[a] = true
	}
	return nil
}

// reversedAxes returns rank-1, ..., 1, 0.
func reversedAxes(rank int) []int {
	axes := make([]int, rank)
	for i := range axes {
		axes[i] = rank - 1 - i
	}
	return axes
}

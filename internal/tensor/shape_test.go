package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"1d", Shape{5}, 5},
		{"2d", Shape{3, 7}, 21},
		{"3d", Shape{2, 3, 5}, 30},
		{"unit axes", Shape{1, 1, 4, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{3, 7}, []int{7, 1}},
		{Shape{3, 4, 5}, []int{20, 5, 1}},
		{Shape{2, 3, 5}, []int{15, 5, 1}},
		{Shape{4, 2, 3}, []int{6, 3, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		assert.Equal(t, tt.want, got, "strides of %v", tt.shape)
	}
}

// Every row-major stride is the product of the trailing extents.
func TestShapeComputeStrides_RowMajorRule(t *testing.T) {
	shapes := []Shape{{1}, {9}, {2, 2}, {6, 1, 3}, {2, 3, 4, 5}, {7, 1, 1, 2, 3}}
	for _, s := range shapes {
		strides := s.ComputeStrides()
		require.Len(t, strides, len(s))
		assert.Equal(t, 1, strides[len(s)-1])
		for i := 0; i < len(s)-1; i++ {
			assert.Equal(t, Shape(s[i+1:]).NumElements(), strides[i], "axis %d of %v", i, s)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{}.Validate())
	require.NoError(t, Shape{1, 2, 3}.Validate())

	err := Shape{2, 0, 3}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Axis)
	assert.Contains(t, err.Error(), "dimension 1 is 0")

	err = Shape{-4}.Validate()
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestShapeValidate_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		axis  int
	}{
		{"wraps to zero", Shape{1 << 32, 1 << 32}, 1},
		{"wraps negative", Shape{3, 1 << 62}, 1},
		{"max int then two", Shape{math.MaxInt, 2}, 1},
		{"third axis", Shape{1 << 20, 1 << 20, 1 << 30}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			require.ErrorIs(t, err, ErrInvalidShape)

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.True(t, shapeErr.Overflow)
			assert.Equal(t, tt.axis, shapeErr.Axis)
			assert.Contains(t, err.Error(), "overflows")
		})
	}

	require.NoError(t, Shape{math.MaxInt}.Validate())
	require.NoError(t, Shape{1, math.MaxInt, 1}.Validate())
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	assert.True(t, s.Equal(c))
	c[0] = 9
	assert.Equal(t, 2, s[0], "clone must not alias")
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2, 3, 1}))
	assert.True(t, Shape{}.Equal(nil))
}

func TestValidateAxes(t *testing.T) {
	require.NoError(t, validateAxes([]int{2, 0, 1}, 3))
	require.NoError(t, validateAxes([]int{}, 0))

	for _, axes := range [][]int{{0, 1}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		err := validateAxes(axes, 3)
		require.ErrorIs(t, err, ErrInvalidAxes, "axes %v", axes)
	}
}

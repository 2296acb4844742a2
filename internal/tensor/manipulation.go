package tensor

// Transpose reverses the axis order.
//
// Shape and strides are both reversed, so the element at (i0, ..., ik) of
// the source is the element at (ik, ..., i0) of the result. No data is
// copied: the result shares the source buffer.
//
// Example:
//
//	a, _ := tensor.Arange[int](tensor.Shape{2, 3, 5}) // stride [15, 5, 1]
//	b := a.Transpose()                                // shape [5, 3, 2], stride [1, 5, 15]
func (a *Array[T]) Transpose() *Array[T] {
	axes := reversedAxes(len(a.shape))
	return a.view(axes)
}

// Permute reorders axes so that axis i of the result is axis axes[i] of
// the source. Like Transpose it shares the source buffer.
//
// axes must be a permutation of 0..Rank()-1.
//
// Example:
//
//	a, _ := tensor.New[float32](tensor.Shape{2, 3, 4})
//	b, _ := a.Permute(1, 2, 0) // shape [3, 4, 2]
func (a *Array[T]) Permute(axes ...int) (*Array[T], error) {
	if err := validateAxes(axes, len(a.shape)); err != nil {
		return nil, err
	}
	return a.view(axes), nil
}

func (a *Array[T]) view(axes []int) *Array[T] {
	return &Array[T]{
		buf:    a.buf,
		shape:  Shape(permute(a.shape, axes)),
		stride: permute(a.stride, axes),
	}
}

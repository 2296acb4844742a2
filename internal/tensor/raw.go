package tensor

// buffer is the flat element storage behind one or more arrays.
//
// A buffer is never written after the array that allocated it is returned.
// Arrays derived by reinterpretation (Transpose, Permute) point at the same
// buffer; everything else allocates a new one.
type buffer[T Numeric] struct {
	data []T
}

func newBuffer[T Numeric](n int) *buffer[T] {
	return &buffer[T]{data: make([]T, n)}
}

// bufferFrom copies src into a new buffer.
func bufferFrom[T Numeric](src []T) *buffer[T] {
	buf := newBuffer[T](len(src))
	copy(buf.data, src)
	return buf
}

// walk visits positions [start, end) of the logical row-major order of
// shape, passing the logical position and the matching buffer offset for
// each stride set. The odometer is seeded by decomposing start, so
// independent ranges can be walked concurrently.
func walk(shape Shape, start, end int, fn func(pos int, offs []int), strides ...[]int) {
	if start >= end {
		return
	}
	rank := len(shape)
	coord := make([]int, rank)
	offs := make([]int, len(strides))

	rem := start
	for axis, s := range shape.ComputeStrides() {
		coord[axis] = rem / s
		rem %= s
	}
	for k, st := range strides {
		for axis, c := range coord {
			offs[k] += c * st[axis]
		}
	}

	for pos := start; ; {
		fn(pos, offs)
		pos++
		if pos == end {
			return
		}
		// Carry from the innermost axis outwards.
		for axis := rank - 1; axis >= 0; axis-- {
			coord[axis]++
			for k, st := range strides {
				offs[k] += st[axis]
			}
			if coord[axis] < shape[axis] {
				break
			}
			for k, st := range strides {
				offs[k] -= coord[axis] * st[axis]
			}
			coord[axis] = 0
		}
	}
}

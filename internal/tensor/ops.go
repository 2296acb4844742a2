package tensor

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/born-ml/strided/internal/parallel"
)

// Map applies fn to every element. The result keeps the receiver's shape
// and strides: fn is applied position by position over the buffer.
func (a *Array[T]) Map(fn func(T) T) *Array[T] {
	return a.mapWith(parallel.DefaultConfig(), fn)
}

func (a *Array[T]) mapWith(cfg parallel.Config, fn func(T) T) *Array[T] {
	src := a.buf.data
	out := newBuffer[T](len(src))
	parallel.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			out.data[i] = fn(src[i])
		}
	}, cfg)
	return &Array[T]{
		buf:    out,
		shape:  a.shape.Clone(),
		stride: slices.Clone(a.stride),
	}
}

// ZipWith combines a and b element by element with fn.
//
// Both operands must have identical shapes. Elements are paired by logical
// multi-index, each read through its own strides, so operands with
// different layouts (for example one of them transposed) combine
// correctly. The result is row-major.
func (a *Array[T]) ZipWith(b *Array[T], fn func(x, y T) T) (*Array[T], error) {
	return a.zipWith(parallel.DefaultConfig(), b, fn)
}

func (a *Array[T]) zipWith(cfg parallel.Config, b *Array[T], fn func(x, y T) T) (*Array[T], error) {
	if !a.shape.Equal(b.shape) {
		return nil, &ShapeMismatchError{A: a.shape.Clone(), B: b.shape.Clone()}
	}

	n := a.NumElements()
	out := newBuffer[T](n)
	if chunks := cfg.Chunks(n); chunks > 1 {
		slog.Debug("parallel elementwise", "elements", n, "chunks", chunks)
	}
	parallel.For(n, func(start, end int) {
		walk(a.shape, start, end, func(pos int, offs []int) {
			out.data[pos] = fn(a.buf.data[offs[0]], b.buf.data[offs[1]])
		}, a.stride, b.stride)
	}, cfg)

	return &Array[T]{
		buf:    out,
		shape:  a.shape.Clone(),
		stride: a.shape.ComputeStrides(),
	}, nil
}

// Add returns a + b elementwise. Shapes must match exactly.
func (a *Array[T]) Add(b *Array[T]) (*Array[T], error) {
	return a.ZipWith(b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise. Shapes must match exactly.
func (a *Array[T]) Sub(b *Array[T]) (*Array[T], error) {
	return a.ZipWith(b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise (Hadamard product). Shapes must match exactly.
func (a *Array[T]) Mul(b *Array[T]) (*Array[T], error) {
	return a.ZipWith(b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise. Shapes must match exactly.
// For integer types a zero element in b yields ErrDivisionByZero; float
// division follows IEEE 754.
func (a *Array[T]) Div(b *Array[T]) (*Array[T], error) {
	if !a.shape.Equal(b.shape) {
		return nil, &ShapeMismatchError{A: a.shape.Clone(), B: b.shape.Clone()}
	}
	if !a.DType().IsFloat() {
		for i, v := range b.buf.data {
			if v == 0 {
				idx, _ := b.Unravel(i)
				return nil, fmt.Errorf("div: divisor at %v: %w", idx, ErrDivisionByZero)
			}
		}
	}
	return a.ZipWith(b, func(x, y T) T { return x / y })
}

// AddScalar adds s to every element. Shape and strides are preserved.
func (a *Array[T]) AddScalar(s T) *Array[T] {
	return a.Map(func(x T) T { return x + s })
}

// SubScalar subtracts s from every element. Shape and strides are preserved.
func (a *Array[T]) SubScalar(s T) *Array[T] {
	return a.Map(func(x T) T { return x - s })
}

// MulScalar multiplies every element by s. Shape and strides are preserved.
func (a *Array[T]) MulScalar(s T) *Array[T] {
	return a.Map(func(x T) T { return x * s })
}

// DivScalar divides every element by s. Shape and strides are preserved.
// For integer types s == 0 yields ErrDivisionByZero.
func (a *Array[T]) DivScalar(s T) (*Array[T], error) {
	if s == 0 && !a.DType().IsFloat() {
		return nil, fmt.Errorf("div scalar: %w", ErrDivisionByZero)
	}
	return a.Map(func(x T) T { return x / s }), nil
}

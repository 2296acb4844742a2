// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense N-dimensional strided array.
//
// # Overview
//
// An Array[T] holds a flat buffer, a shape (extent per axis) and a stride
// (buffer step per axis). Freshly constructed arrays are row-major: the
// last axis has stride 1 and every other stride is the product of the
// extents after it.
//
//	a, _ := tensor.Arange[int](tensor.Shape{2, 3, 5}) // stride [15, 5, 1]
//	v, _ := a.At(1, 2, 3)                             // 28
//
// # Transpose and Permute
//
// Transpose and Permute reorder shape and stride together. They never move
// data: the result reads the same buffer through the new strides.
//
//	b := a.Transpose()      // shape [5, 3, 2], stride [1, 5, 15]
//	w, _ := b.AtFlat(1)     // 15: second element in b's logical order
//
// # Elementwise Arithmetic
//
// Add, Sub, Mul and Div require identical shapes and never broadcast.
// Operands are paired by logical multi-index, so a transposed operand
// combines correctly with a row-major one. Scalar variants keep the
// input's shape and stride.
//
// # Immutability
//
// Arrays are values. No operation modifies an existing array; buffers are
// shared only between an array and its transposes or permutations, and
// only for reading.
//
// # Errors
//
// Failures are returned, never panicked, and can be matched with errors.Is
// against ErrInvalidShape, ErrDataLength, ErrIndexOutOfBounds,
// ErrShapeMismatch, ErrInvalidAxes and ErrDivisionByZero, or with
// errors.As against the typed errors carrying details.
package tensor

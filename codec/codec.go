// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package codec reads and writes arrays in the STRD binary format: magic
// bytes, a CBOR header describing dtype and shape, then the elements in
// logical row-major order.
//
// Example:
//
//	var buf bytes.Buffer
//	err := codec.Encode(&buf, a, codec.Float16)
//	b, err := codec.Decode[float32](&buf)
package codec

import (
	"io"

	"github.com/born-ml/strided/internal/codec"
	"github.com/born-ml/strided/tensor"
)

// Encoding selects how payload elements are stored.
type Encoding = codec.Encoding

// Payload encodings. Float16 and BFloat16 apply to float arrays only.
const (
	Raw      Encoding = codec.Raw
	Float16  Encoding = codec.Float16
	BFloat16 Encoding = codec.BFloat16
)

// Header describes a stored array.
type Header = codec.Header

// Errors.
var (
	ErrInvalidMagic        = codec.ErrInvalidMagic
	ErrUnsupportedVersion  = codec.ErrUnsupportedVersion
	ErrHeaderTooLarge      = codec.ErrHeaderTooLarge
	ErrInvalidHeader       = codec.ErrInvalidHeader
	ErrDTypeMismatch       = codec.ErrDTypeMismatch
	ErrUnsupportedEncoding = codec.ErrUnsupportedEncoding
	ErrTruncated           = codec.ErrTruncated
)

// Encode writes a to w.
func Encode[T tensor.Numeric](w io.Writer, a *tensor.Array[T], enc Encoding) error {
	return codec.Encode(w, a, enc)
}

// Decode reads an array written by Encode. The stored dtype must match T.
func Decode[T tensor.Numeric](r io.Reader) (*tensor.Array[T], error) {
	return codec.Decode[T](r)
}

// ReadHeader reads only the header, leaving r positioned at the payload.
func ReadHeader(r io.Reader) (Header, error) {
	return codec.ReadHeader(r)
}

// ParseEncoding parses an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	return codec.ParseEncoding(s)
}

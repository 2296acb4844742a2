// Package codec reads and writes arrays in a small self-describing binary
// format.
//
// Layout:
//
//	"STRD"            4 bytes magic
//	header length     uint32, little endian
//	header            CBOR map (see Header)
//	payload           Count elements in logical row-major order
//
// The payload is written in the element type's native little-endian form
// (Raw) or narrowed to 16-bit floats (Float16, BFloat16) for float arrays.
package codec

import (
	"fmt"

	"github.com/born-ml/strided/internal/tensor"
)

// Format constants.
const (
	MagicBytes    = "STRD"
	FormatVersion = 1
	MaxHeaderSize = 1 << 20
	MaxElements   = 1<<31 - 1

	// payloadChunk bounds the payload buffer allocated before any bytes
	// have been read.
	payloadChunk = 1 << 16
)

// Encoding selects how payload elements are stored.
type Encoding string

// Supported payload encodings.
const (
	Raw      Encoding = "raw"
	Float16  Encoding = "float16"
	BFloat16 Encoding = "bfloat16"
)

// ParseEncoding parses an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case Raw, Float16, BFloat16:
		return e, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
	}
}

// Header describes the array stored after it.
type Header struct {
	Version  int      `cbor:"version"`
	DType    string   `cbor:"dtype"`
	Shape    []int    `cbor:"shape"`
	Encoding Encoding `cbor:"encoding"`
	Count    int      `cbor:"count"`
}

// elementSize returns the payload width of one element.
func elementSize(dt tensor.DataType, enc Encoding) (int, error) {
	switch enc {
	case Raw:
		return dt.Size(), nil
	case Float16, BFloat16:
		if !dt.IsFloat() {
			return 0, fmt.Errorf("%w: %s for %s", ErrUnsupportedEncoding, enc, dt)
		}
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, string(enc))
	}
}

// validate checks the header against the requested element type.
func (h *Header) validate(want tensor.DataType) (int, error) {
	if h.Version != FormatVersion {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.DType != want.String() {
		return 0, fmt.Errorf("%w: stored %s, requested %s", ErrDTypeMismatch, h.DType, want)
	}
	if err := tensor.Shape(h.Shape).Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	n := 1
	for _, d := range h.Shape {
		if d > MaxElements/n {
			return 0, fmt.Errorf("%w: shape %v exceeds %d elements", ErrInvalidHeader, h.Shape, MaxElements)
		}
		n *= d
	}
	if h.Count != n {
		return 0, fmt.Errorf("%w: count %d does not match shape %v", ErrInvalidHeader, h.Count, h.Shape)
	}
	return elementSize(want, h.Encoding)
}

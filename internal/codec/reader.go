package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/d4l3k/go-bfloat16"
	"github.com/fxamacker/cbor/v2"
	"github.com/x448/float16"

	"github.com/born-ml/strided/internal/tensor"
)

// ReadHeader reads the magic bytes and header, leaving r at the payload.
func ReadHeader(r io.Reader) (Header, error) {
	var header Header

	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return header, fmt.Errorf("failed to read magic bytes: %w", truncated(err))
	}
	if string(magic) != MagicBytes {
		return header, fmt.Errorf("%w: got %q", ErrInvalidMagic, magic)
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return header, fmt.Errorf("failed to read header size: %w", truncated(err))
	}
	if size > MaxHeaderSize {
		return header, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, size)
	}

	headerCBOR := make([]byte, size)
	if _, err := io.ReadFull(r, headerCBOR); err != nil {
		return header, fmt.Errorf("failed to read header: %w", truncated(err))
	}
	if err := cbor.Unmarshal(headerCBOR, &header); err != nil {
		return header, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	return header, nil
}

// Decode reads an array written by Encode. The stored dtype must be the
// dtype of T.
func Decode[T tensor.Numeric](r io.Reader) (*tensor.Array[T], error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	dt := tensor.DTypeOf[T]()
	width, err := header.validate(dt)
	if err != nil {
		return nil, err
	}

	payload, err := readPayload(r, header.Count*width)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", truncated(err))
	}

	slog.Debug("decoded array", "dtype", header.DType, "shape", header.Shape, "encoding", header.Encoding)
	return tensor.FromSlice(tensor.Shape(header.Shape), decodePayload[T](payload, dt, header.Encoding, header.Count))
}

func decodePayload[T tensor.Numeric](payload []byte, dt tensor.DataType, enc Encoding, n int) []T {
	out := make([]T, n)
	switch enc {
	case Float16:
		for i := range out {
			out[i] = T(float16.Frombits(binary.LittleEndian.Uint16(payload[2*i:])).Float32())
		}
		return out
	case BFloat16:
		for i, f := range bfloat16.DecodeFloat32(payload) {
			out[i] = T(f)
		}
		return out
	}

	width := dt.Size()
	for i := range out {
		out[i] = readRaw[T](payload[i*width:], dt)
	}
	return out
}

func readRaw[T tensor.Numeric](b []byte, dt tensor.DataType) T {
	switch dt {
	case tensor.Float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case tensor.Float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	case tensor.Int8:
		return T(int8(b[0]))
	case tensor.Uint8:
		return T(b[0])
	case tensor.Int16:
		return T(int16(binary.LittleEndian.Uint16(b)))
	case tensor.Uint16:
		return T(binary.LittleEndian.Uint16(b))
	case tensor.Int32:
		return T(int32(binary.LittleEndian.Uint32(b)))
	case tensor.Uint32:
		return T(binary.LittleEndian.Uint32(b))
	case tensor.Int64, tensor.Int:
		return T(int64(binary.LittleEndian.Uint64(b)))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}

// readPayload reads exactly size bytes. The buffer grows with the data
// actually read, so a header claiming a large count costs nothing until
// the bytes arrive.
func readPayload(r io.Reader, size int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(min(size, payloadChunk))
	n, err := io.CopyN(&buf, r, int64(size))
	if err != nil {
		if n < int64(size) && errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncated maps a short read to ErrTruncated.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}

package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/d4l3k/go-bfloat16"
	"github.com/fxamacker/cbor/v2"
	"github.com/x448/float16"

	"github.com/born-ml/strided/internal/tensor"
)

// Encode writes a to w using the given payload encoding.
// Elements are written in logical row-major order, so a transposed array
// is stored as its materialized transpose.
func Encode[T tensor.Numeric](w io.Writer, a *tensor.Array[T], enc Encoding) error {
	dt := a.DType()
	if _, err := elementSize(dt, enc); err != nil {
		return err
	}

	header := Header{
		Version:  FormatVersion,
		DType:    dt.String(),
		Shape:    []int(a.Shape()),
		Encoding: enc,
		Count:    a.NumElements(),
	}
	headerCBOR, err := cbor.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if _, err := io.WriteString(w, MagicBytes); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	//nolint:gosec // G115: header is a handful of ints, far below MaxUint32
	if err := binary.Write(w, binary.LittleEndian, uint32(len(headerCBOR))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerCBOR); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(encodePayload(a.Data(), dt, enc)); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

func encodePayload[T tensor.Numeric](data []T, dt tensor.DataType, enc Encoding) []byte {
	switch enc {
	case Float16:
		out := make([]byte, 0, 2*len(data))
		for _, v := range data {
			out = binary.LittleEndian.AppendUint16(out, float16.Fromfloat32(float32(v)).Bits())
		}
		return out
	case BFloat16:
		f32s := make([]float32, len(data))
		for i, v := range data {
			f32s[i] = float32(v)
		}
		return bfloat16.EncodeFloat32(f32s)
	}

	out := make([]byte, 0, dt.Size()*len(data))
	for _, v := range data {
		out = appendRaw(out, dt, v)
	}
	return out
}

func appendRaw[T tensor.Numeric](buf []byte, dt tensor.DataType, v T) []byte {
	switch dt {
	case tensor.Float32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v)))
	case tensor.Float64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(v)))
	case tensor.Int8, tensor.Uint8:
		return append(buf, byte(v))
	case tensor.Int16, tensor.Uint16:
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case tensor.Int32, tensor.Uint32:
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
}

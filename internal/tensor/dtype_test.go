package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius float64

func TestDTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DTypeOf[float32]())
	assert.Equal(t, Float64, DTypeOf[float64]())
	assert.Equal(t, Int32, DTypeOf[int32]())
	assert.Equal(t, Uint8, DTypeOf[uint8]())
	assert.Equal(t, Int, DTypeOf[int]())
	assert.Equal(t, Float64, DTypeOf[celsius](), "named types resolve to their kind")
}

func TestDataTypeSizeAndString(t *testing.T) {
	for dt := Float32; dt <= Uintptr; dt++ {
		parsed, ok := ParseDataType(dt.String())
		assert.True(t, ok, "parse %s", dt)
		assert.Equal(t, dt, parsed)
		assert.Positive(t, dt.Size())
	}
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.True(t, Float64.IsFloat())
	assert.False(t, Int64.IsFloat())

	_, ok := ParseDataType("complex128")
	assert.False(t, ok)
}

package tensor

import (
	"math"
	"testing"

	"github.com/born-ml/strided/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a, _ := FromSlice(Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b, _ := FromSlice(Shape{2, 3}, []float32{6, 5, 4, 3, 2, 1})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, sum.Shape())
	assert.Equal(t, []float32{7, 7, 7, 7, 7, 7}, sum.Data())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{-5, -3, -1, 1, 3, 5}, diff.Data())

	// Operands are untouched.
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, a.Data())
	assert.Equal(t, []float32{6, 5, 4, 3, 2, 1}, b.Data())
}

func TestMulDiv(t *testing.T) {
	a, _ := FromSlice(Shape{4}, []int{2, 4, 6, 8})
	b, _ := FromSlice(Shape{4}, []int{1, 2, 3, 4})

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8, 18, 32}, prod.Data())

	quot, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 2}, quot.Data())
}

func TestDiv_IntegerZero(t *testing.T) {
	a, _ := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	b, _ := FromSlice(Shape{2, 2}, []int{1, 2, 0, 4})

	_, err := a.Div(b)
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Contains(t, err.Error(), "[1 0]")

	_, err = a.DivScalar(0)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDiv_FloatZero(t *testing.T) {
	a, _ := FromSlice(Shape{2}, []float64{1, -1})
	b, _ := FromSlice(Shape{2}, []float64{0, 0})

	q, err := a.Div(b)
	require.NoError(t, err)
	data := q.Data()
	assert.True(t, math.IsInf(data[0], 1))
	assert.True(t, math.IsInf(data[1], -1))

	q, err = a.DivScalar(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.Data()[0], 1))
}

func TestBinaryOps_ShapeMismatch(t *testing.T) {
	a, _ := New[int](Shape{2, 3})
	b, _ := New[int](Shape{3, 2})
	c, _ := New[int](Shape{6})
	d, _ := New[int](Shape{2, 3, 1})

	ops := map[string]func(x, y *Array[int]) (*Array[int], error){
		"add": (*Array[int]).Add,
		"sub": (*Array[int]).Sub,
		"mul": (*Array[int]).Mul,
		"div": func(x, y *Array[int]) (*Array[int], error) { return x.Div(y.AddScalar(1)) },
	}

	for name, op := range ops {
		for _, other := range []*Array[int]{b, c, d} {
			out, err := op(a, other)
			assert.Nil(t, out, name)
			require.ErrorIs(t, err, ErrShapeMismatch, name)

			var mm *ShapeMismatchError
			require.ErrorAs(t, err, &mm)
			assert.Equal(t, Shape{2, 3}, mm.A)
			assert.Equal(t, other.Shape(), mm.B)
		}
	}
}

// Operands with different layouts are combined by logical index, not by
// buffer position.
func TestAdd_MixedLayouts(t *testing.T) {
	a, _ := Arange[int](Shape{3, 2})
	b, _ := Arange[int](Shape{2, 3})
	bt := b.Transpose() // shape [3, 2], stride [1, 3]

	sum, err := a.Add(bt)
	require.NoError(t, err)
	assert.True(t, sum.IsContiguous())

	for index, v := range sum.All() {
		x, _ := a.At(index...)
		y, _ := bt.At(index...)
		assert.Equal(t, x+y, v, "at %v", index)
	}
	// a = [[0 1] [2 3] [4 5]], bt = [[0 3] [1 4] [2 5]]
	assert.Equal(t, []int{0, 4, 3, 7, 6, 10}, sum.Data())

	both, err := bt.Sub(bt)
	require.NoError(t, err)
	assert.Equal(t, make([]int, 6), both.Data())
}

func TestScalarOps_PreserveLayout(t *testing.T) {
	a, _ := Arange[float64](Shape{2, 3, 5})
	at := a.Transpose()

	for name, out := range map[string]*Array[float64]{
		"add": at.AddScalar(1),
		"sub": at.SubScalar(1),
		"mul": at.MulScalar(2),
	} {
		assert.Equal(t, at.Shape(), out.Shape(), name)
		assert.Equal(t, at.Strides(), out.Strides(), name)
		assert.False(t, out.SharesBuffer(at), name)
	}

	div, err := at.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, at.Strides(), div.Strides())

	plus := at.AddScalar(10)
	for index, v := range at.All() {
		got, err := plus.At(index...)
		require.NoError(t, err)
		assert.Equal(t, v+10, got)
	}
	first, _ := at.AtFlat(1)
	assert.Equal(t, 15.0, first, "source unchanged")
}

func TestMap(t *testing.T) {
	a, _ := FromSlice(Shape{3}, []int{1, -2, 3})
	abs := a.Map(func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	})
	assert.Equal(t, []int{1, 2, 3}, abs.Data())
}

func TestZipWith_ParallelMatchesSequential(t *testing.T) {
	a, _ := Arange[int64](Shape{8, 16, 32})
	b, _ := Arange[int64](Shape{32, 16, 8})
	bt := b.Transpose()
	fn := func(x, y int64) int64 { return 3*x - y }

	seq, err := a.zipWith(parallel.Sequential(), bt, fn)
	require.NoError(t, err)

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 100}
	require.Greater(t, cfg.Chunks(a.NumElements()), 1)
	par, err := a.zipWith(cfg, bt, fn)
	require.NoError(t, err)

	assert.Equal(t, seq.Data(), par.Data())

	mseq := bt.mapWith(parallel.Sequential(), func(x int64) int64 { return x * x })
	mpar := bt.mapWith(cfg, func(x int64) int64 { return x * x })
	assert.True(t, mseq.Equal(mpar))
	assert.Equal(t, bt.Strides(), mpar.Strides())
}

func BenchmarkAdd(b *testing.B) {
	x, _ := Arange[float32](Shape{256, 256})
	y := x.Transpose()

	b.Run("contiguous", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.Add(x)
		}
	})

	b.Run("transposed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = x.Add(y)
		}
	})
}

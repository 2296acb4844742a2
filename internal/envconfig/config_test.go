package envconfig

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Setenv("STRIDED_DEBUG", "")
	LoadConfig()
	require.False(t, Debug)
	t.Setenv("STRIDED_DEBUG", "false")
	LoadConfig()
	require.False(t, Debug)
	t.Setenv("STRIDED_DEBUG", "1")
	LoadConfig()
	require.True(t, Debug)
	t.Setenv("STRIDED_DEBUG", "yes please")
	LoadConfig()
	require.True(t, Debug)
}

func TestParallelSettings(t *testing.T) {
	t.Setenv("STRIDED_PARALLEL", "")
	t.Setenv("STRIDED_PARALLEL_MIN", "")
	t.Setenv("STRIDED_WORKERS", "")
	LoadConfig()
	assert.False(t, Parallel)
	assert.Equal(t, 4096, ParallelMin)
	assert.Equal(t, runtime.NumCPU(), Workers)

	t.Setenv("STRIDED_PARALLEL", "true")
	t.Setenv("STRIDED_PARALLEL_MIN", "'128'")
	t.Setenv("STRIDED_WORKERS", " 3 ")
	LoadConfig()
	assert.True(t, Parallel)
	assert.Equal(t, 128, ParallelMin)
	assert.Equal(t, 3, Workers)
}

func TestInvalidSettingsKeepDefaults(t *testing.T) {
	t.Setenv("STRIDED_PARALLEL", "maybe")
	t.Setenv("STRIDED_PARALLEL_MIN", "-5")
	t.Setenv("STRIDED_WORKERS", "many")
	LoadConfig()
	assert.False(t, Parallel)
	assert.Equal(t, 4096, ParallelMin)
	assert.Equal(t, runtime.NumCPU(), Workers)
}

func TestValues(t *testing.T) {
	t.Setenv("STRIDED_WORKERS", "2")
	LoadConfig()
	vals := Values()
	assert.Len(t, vals, len(AsMap()))
	assert.Equal(t, "2", vals["STRIDED_WORKERS"])
}

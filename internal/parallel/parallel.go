// Package parallel splits index ranges across goroutines for elementwise kernels.
package parallel

import (
	"sync"

	"github.com/born-ml/strided/internal/envconfig"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns the configuration described by the environment.
// Parallel execution is off unless STRIDED_PARALLEL is set.
func DefaultConfig() Config {
	return Config{
		Enabled:      envconfig.Parallel && envconfig.Workers > 1,
		NumWorkers:   envconfig.Workers,
		MinChunkSize: envconfig.ParallelMin,
	}
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return Config{}
}

// Chunks reports how many ranges For would hand out for n items.
func (c Config) Chunks(n int) int {
	if n <= 0 {
		return 0
	}
	if !c.Enabled || c.NumWorkers <= 1 || n < 2*c.MinChunkSize {
		return 1
	}
	size := c.chunkSize(n)
	return (n + size - 1) / size
}

func (c Config) chunkSize(n int) int {
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// For calls f once per half-open range [start, end) covering [0, n).
// Ranges are disjoint. It returns after every call has completed.
func For(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if cfg.Chunks(n) <= 1 {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := cfg.chunkSize(n)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

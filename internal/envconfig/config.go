// Package envconfig reads strided settings from the environment.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

var (
	// Set via STRIDED_DEBUG in the environment
	Debug bool
	// Set via STRIDED_PARALLEL in the environment
	Parallel bool
	// Set via STRIDED_PARALLEL_MIN in the environment
	ParallelMin int
	// Set via STRIDED_WORKERS in the environment
	Workers int
)

// EnvVar describes one environment setting.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every recognized variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"STRIDED_DEBUG":        {"STRIDED_DEBUG", Debug, "Show additional debug information (e.g. STRIDED_DEBUG=1)"},
		"STRIDED_PARALLEL":     {"STRIDED_PARALLEL", Parallel, "Evaluate large elementwise operations on multiple goroutines"},
		"STRIDED_PARALLEL_MIN": {"STRIDED_PARALLEL_MIN", ParallelMin, "Minimum elements per goroutine (default 4096)"},
		"STRIDED_WORKERS":      {"STRIDED_WORKERS", Workers, "Number of worker goroutines (default number of CPUs)"},
	}
}

// Values returns AsMap rendered as strings.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

// LoadConfig re-reads every variable, resetting unset ones to their defaults.
func LoadConfig() {
	Debug = false
	Parallel = false
	ParallelMin = 4096
	Workers = runtime.NumCPU()

	if debug := clean("STRIDED_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	if p := clean("STRIDED_PARALLEL"); p != "" {
		d, err := strconv.ParseBool(p)
		if err != nil {
			slog.Error("invalid setting, ignoring", "STRIDED_PARALLEL", p, "error", err)
		} else {
			Parallel = d
		}
	}

	if m := clean("STRIDED_PARALLEL_MIN"); m != "" {
		val, err := strconv.Atoi(m)
		if err != nil || val <= 0 {
			slog.Error("invalid setting must be greater than zero", "STRIDED_PARALLEL_MIN", m, "error", err)
		} else {
			ParallelMin = val
		}
	}

	if w := clean("STRIDED_WORKERS"); w != "" {
		val, err := strconv.Atoi(w)
		if err != nil || val <= 0 {
			slog.Error("invalid setting must be greater than zero", "STRIDED_WORKERS", w, "error", err)
		} else {
			Workers = val
		}
	}
}

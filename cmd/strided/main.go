// Package main provides the strided CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/born-ml/strided/internal/envconfig"
)

const version = "v0.1.0"

func main() {
	level := slog.LevelInfo
	if envconfig.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}

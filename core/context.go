package core

import (
	"context"

	"github.com/huangsam/repulse/internal/contract"
)

// Context keys for run options
type contextKey string

const quietKey contextKey = "quiet"

// WithQuiet marks a context so pipeline progress lines are not printed.
// Warnings are still logged.
func WithQuiet(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietKey, true)
}

// isQuiet returns whether progress lines should be suppressed
func isQuiet(ctx context.Context) bool {
	val := ctx.Value(quietKey)
	if val == nil {
		return false // default: show progress
	}
	quiet, ok := val.(bool)
	return ok && quiet
}

// progressLogger returns the info logger for a run.
func progressLogger(ctx context.Context) func(format string, args ...any) {
	if isQuiet(ctx) {
		return func(string, ...any) {}
	}
	return contract.LogInfo
}

// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/repulse/schema"
)

// SeriesLoader supplies the daily traffic table.
// This allows the pipeline to be tested without a real database.
type SeriesLoader interface {
	// LoadSeries returns every stored day, sorted ascending by date.
	LoadSeries(ctx context.Context) (schema.TrafficSeries, error)

	// GetStatus returns row counts and the stored date range.
	GetStatus(ctx context.Context) (schema.SeriesStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// ChartRenderer draws one chart plan to an image file.
type ChartRenderer interface {
	Render(plan schema.ChartPlan, path string) error
}

// Compositor glues rendered vector images side by side.
type Compositor interface {
	Compose(paths []string, outPath string) (schema.CompositeLayout, error)
}

// Package render draws ChartPlans to SVG or PNG files.
//
// Two backends are available: gonum (gonum.org/v1/plot) and gochart
// (github.com/wcharczuk/go-chart/v2). Both share the tick placement and
// color handling in this package, so a chart looks the same regardless of
// the image format.
package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
)

// DefaultDateFormat labels date ticks as month-day-year without padding.
const DefaultDateFormat = "1-2-2006"

// ErrEmptyPlan is returned when a plan has no points to draw.
var ErrEmptyPlan = errors.New("chart plan has no points")

// Options configures a renderer for one run.
type Options struct {
	Mode       schema.DisplayMode
	Weekday    time.Weekday
	DateFormat string
}

// OptionsFromConfig extracts the renderer options of a run.
func OptionsFromConfig(cfg *contract.Config) Options {
	return Options{Mode: cfg.Mode, Weekday: cfg.Weekday, DateFormat: DefaultDateFormat}
}

// New returns the renderer for a backend.
func New(backend schema.RenderBackend, opts Options) (contract.ChartRenderer, error) {
	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFormat
	}
	switch backend {
	case schema.GonumBackend, "":
		return &GonumRenderer{opts: opts}, nil
	case schema.GoChartBackend:
		return &GoChartRenderer{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unsupported renderer: %s", backend)
	}
}

// formatFor returns the image format implied by a file extension.
func formatFor(path string) (schema.OutputFormat, error) {
	ext := schema.OutputFormat(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if _, ok := schema.ValidOutputFormats[ext]; !ok {
		return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
	return ext, nil
}

// checkPlan rejects plans that cannot be drawn.
func checkPlan(plan schema.ChartPlan, path string) (schema.OutputFormat, error) {
	if len(plan.Points) == 0 {
		return "", fmt.Errorf("%s: %w", plan.Spec.Name, ErrEmptyPlan)
	}
	return formatFor(path)
}

// plotValues collects every y value that has to fit on the chart.
func plotValues(plan schema.ChartPlan) []float64 {
	values := make([]float64, 0, len(plan.Points)+len(plan.Curve))
	for _, p := range plan.Points {
		values = append(values, p.Y)
	}
	for _, c := range plan.Curve {
		values = append(values, c.Y)
	}
	return values
}

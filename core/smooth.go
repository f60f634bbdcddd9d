package core

import (
	"fmt"
	"math"
	"time"

	"github.com/huangsam/repulse/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

const secondsPerDay = 24 * 60 * 60

// DayOrdinal maps a date onto a linear day axis (days since the Unix epoch).
func DayOrdinal(t time.Time) float64 {
	return float64(t.Unix()) / secondsPerDay
}

// FromDayOrdinal is the inverse of DayOrdinal, rounded to the second.
func FromDayOrdinal(x float64) time.Time {
	return time.Unix(int64(math.Round(x*secondsPerDay)), 0).UTC()
}

// Smooth fits a not-a-knot cubic interpolating spline through (xs, ys)
// and evaluates it at samples evenly spaced positions over [xs[0], xs[n-1]].
// Fewer than MinSplinePoints points yields a nil curve and no error.
func Smooth(xs, ys []float64, samples int) (schema.SmoothedCurve, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("smooth: %d x values but %d y values", len(xs), len(ys))
	}
	if len(xs) < schema.MinSplinePoints {
		return nil, nil
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("smooth: %w at index %d", schema.ErrNonIncreasingX, i)
		}
	}
	if samples < 2 {
		samples = schema.DefaultCurveSamples
	}

	var spline interp.NotAKnotCubic
	if err := spline.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}

	positions := floats.Span(make([]float64, samples), xs[0], xs[len(xs)-1])
	positions[samples-1] = xs[len(xs)-1]
	curve := make(schema.SmoothedCurve, samples)
	for i, x := range positions {
		curve[i] = schema.CurvePoint{X: x, Y: spline.Predict(x)}
	}
	return curve, nil
}

// SmoothPoints runs Smooth over sampled points on the day axis.
func SmoothPoints(points []schema.SampledPoint, samples int) (schema.SmoothedCurve, error) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = DayOrdinal(p.X)
		ys[i] = p.Y
	}
	return Smooth(xs, ys, samples)
}

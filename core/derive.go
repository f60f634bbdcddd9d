package core

import (
	"time"

	"github.com/huangsam/repulse/schema"
)

// DerivePoints computes the points a chart plots and its x range.
// An empty slice means the chart has nothing to show.
func DerivePoints(series schema.TrafficSeries, spec schema.ChartSpec, weekday time.Weekday) ([]schema.SampledPoint, schema.Window) {
	switch spec.Quantity {
	case schema.SnapshotQuantity:
		points, window, ok := WindowSnapshot(series, spec.Column, weekday)
		if !ok {
			return nil, schema.Window{}
		}
		return points, window
	case schema.CumulativeSumQuantity:
		points := SampleWeekdayPoints(CumulativeSum(series, spec.Column), weekday)
		return points, xRange(points)
	default:
		points := toPoints(SampleWeekday(series, weekday), spec.Column)
		return points, xRange(points)
	}
}

// CumulativeSum returns the running total of a column over every day of
// the series, one point per record.
func CumulativeSum(series schema.TrafficSeries, column schema.Column) []schema.SampledPoint {
	out := make([]schema.SampledPoint, 0, len(series))
	var total int64
	for _, r := range series {
		total += r.Value(column)
		out = append(out, schema.SampledPoint{X: r.Date, Y: float64(total)})
	}
	return out
}

// SampleWeekdayPoints is SampleWeekday for points already projected.
func SampleWeekdayPoints(points []schema.SampledPoint, weekday time.Weekday) []schema.SampledPoint {
	var out []schema.SampledPoint
	for _, p := range points {
		if p.X.Weekday() == weekday {
			out = append(out, p)
		}
	}
	return out
}

// xRange spans the points. A single point gets SinglePointSpan of room.
func xRange(points []schema.SampledPoint) schema.Window {
	switch len(points) {
	case 0:
		return schema.Window{}
	case 1:
		return schema.Window{Start: points[0].X, End: points[0].X.Add(schema.SinglePointSpan)}
	}
	w := schema.Window{Start: points[0].X, End: points[0].X}
	for _, p := range points[1:] {
		if p.X.Before(w.Start) {
			w.Start = p.X
		}
		if p.X.After(w.End) {
			w.End = p.X
		}
	}
	return w
}

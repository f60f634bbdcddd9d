package core

import (
	"time"

	"github.com/huangsam/repulse/schema"
)

// SampleWeekday keeps the records that fall on the given weekday, in order.
func SampleWeekday(series schema.TrafficSeries, weekday time.Weekday) schema.TrafficSeries {
	var out schema.TrafficSeries
	for _, r := range series {
		if r.Date.Weekday() == weekday {
			out = append(out, r)
		}
	}
	return out
}

// positive keeps the records whose column value is strictly above zero.
func positive(series schema.TrafficSeries, column schema.Column) schema.TrafficSeries {
	var out schema.TrafficSeries
	for _, r := range series {
		if r.Value(column) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// toPoints projects records onto a column.
func toPoints(series schema.TrafficSeries, column schema.Column) []schema.SampledPoint {
	out := make([]schema.SampledPoint, 0, len(series))
	for _, r := range series {
		out = append(out, schema.SampledPoint{X: r.Date, Y: float64(r.Value(column))})
	}
	return out
}

package core

import (
	"time"

	"github.com/huangsam/repulse/schema"
)

// WindowSnapshot selects the points of a cumulative column for plotting.
// Rows with a non-positive value are dropped before weekday sampling.
// The window ends at the last point unless the points span less than
// MinSnapshotSpan, in which case it is stretched to first + MinSnapshotSpan.
// It returns false when no point remains.
func WindowSnapshot(series schema.TrafficSeries, column schema.Column, weekday time.Weekday) ([]schema.SampledPoint, schema.Window, bool) {
	sampled := SampleWeekday(positive(series, column), weekday)
	if len(sampled) == 0 {
		return nil, schema.Window{}, false
	}

	first := sampled[0].Date
	last := sampled[len(sampled)-1].Date
	end := last
	if last.Sub(first) < schema.MinSnapshotSpan {
		end = first.Add(schema.MinSnapshotSpan)
	}
	return toPoints(sampled, column), schema.Window{Start: first, End: end}, true
}

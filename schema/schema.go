// Package schema has configs, models and global variables for all parts of repulse.
package schema

import "time"

// TrafficRecord is one row of the daily traffic table.
// Date is a UTC calendar day; missing counters are zero.
type TrafficRecord struct {
	Date           time.Time // Calendar day at UTC midnight
	Clones         int64     // Clones reported for the day
	Views          int64     // Views reported for the day
	TotalDownloads int64     // Cumulative release downloads as of the day
	TotalStars     int64     // Cumulative stargazers as of the day
}

// TrafficSeries is a date-ascending sequence of records with unique dates.
type TrafficSeries []TrafficRecord

// SampledPoint is a point selected for plotting.
type SampledPoint struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

// CurvePoint is one evaluated position of a smoothed curve.
// X is on the ordinal day axis (days since the Unix epoch).
type CurvePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SmoothedCurve is a dense curve through a set of sampled points.
// A nil curve means no curve is drawn.
type SmoothedCurve []CurvePoint

// Window is an inclusive date range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Value returns the counter named by c.
func (r TrafficRecord) Value(c Column) int64 {
	switch c {
	case ClonesColumn:
		return r.Clones
	case ViewsColumn:
		return r.Views
	case DownloadsColumn:
		return r.TotalDownloads
	case StarsColumn:
		return r.TotalStars
	default:
		return 0
	}
}

// Days returns the span of the window in whole days.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

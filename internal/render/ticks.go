package render

import (
	"math"
	"strconv"
	"time"

	"github.com/huangsam/repulse/core"
	"github.com/huangsam/repulse/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
)

// Tick bounds.
const (
	MaxDateLabels   = 20
	MaxIntegerTicks = 8
)

// DateTick is one tick on the date axis. Unlabelled ticks are minor.
type DateTick struct {
	Date  time.Time
	Label string
}

// WeekdayTicks returns one tick per occurrence of weekday inside window.
// When there are more than MaxDateLabels ticks, only every n-th is labelled.
func WeekdayTicks(window schema.Window, weekday time.Weekday, format string) []DateTick {
	d := schema.TruncateDay(window.Start)
	if d.Before(window.Start) {
		d = d.AddDate(0, 0, 1)
	}
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}

	var dates []time.Time
	for ; !d.After(window.End); d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}

	stride := (len(dates) + MaxDateLabels - 1) / MaxDateLabels
	if stride < 1 {
		stride = 1
	}
	ticks := make([]DateTick, len(dates))
	for i, date := range dates {
		ticks[i] = DateTick{Date: date}
		if i%stride == 0 {
			ticks[i].Label = date.Format(format)
		}
	}
	return ticks
}

// IntegerTicks returns integer tick positions over [lo, hi] using a
// 1-2-5 step so that at most MaxIntegerTicks are produced.
func IntegerTicks(lo, hi float64) []float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	step := niceStep((hi - lo) / MaxIntegerTicks)
	var out []float64
	for v := math.Ceil(lo/step) * step; v <= hi; v += step {
		out = append(out, v)
	}
	if len(out) == 0 {
		out = []float64{math.Floor(lo), math.Ceil(hi)}
	}
	return out
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten, never below 1.
func niceStep(raw float64) float64 {
	if raw <= 1 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}

// ValueRange returns y bounds holding every value with a small margin.
// The bounds are whole numbers at least one apart.
func ValueRange(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = floats.Min(values), floats.Max(values)
	margin := (hi - lo) * 0.05
	lo, hi = math.Floor(lo-margin), math.Ceil(hi+margin)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// WeekdayTicker places date ticks on the day ordinal axis.
type WeekdayTicker struct {
	Weekday time.Weekday
	Format  string
}

var _ plot.Ticker = WeekdayTicker{} // Compile-time check

// Ticks implements plot.Ticker.
func (t WeekdayTicker) Ticks(lo, hi float64) []plot.Tick {
	window := schema.Window{Start: core.FromDayOrdinal(lo), End: core.FromDayOrdinal(hi)}
	var out []plot.Tick
	for _, dt := range WeekdayTicks(window, t.Weekday, t.Format) {
		out = append(out, plot.Tick{Value: core.DayOrdinal(dt.Date), Label: dt.Label})
	}
	return out
}

// IntegerTicker labels whole numbers only.
type IntegerTicker struct{}

var _ plot.Ticker = IntegerTicker{} // Compile-time check

// Ticks implements plot.Ticker.
func (IntegerTicker) Ticks(lo, hi float64) []plot.Tick {
	var out []plot.Tick
	for _, v := range IntegerTicks(lo, hi) {
		out = append(out, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 0, 64)})
	}
	return out
}

package render

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/repulse/core"
	"github.com/huangsam/repulse/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Canvas size of the go-chart backend, in pixels.
const (
	GoChartWidth  = 700
	GoChartHeight = 500
)

// GoChartRenderer draws charts with github.com/wcharczuk/go-chart/v2.
// Every marker is drawn as a dot.
type GoChartRenderer struct {
	opts Options
}

// Render implements contract.ChartRenderer.
func (r *GoChartRenderer) Render(plan schema.ChartPlan, path string) error {
	format, err := checkPlan(plan, path)
	if err != nil {
		return err
	}
	color, err := seriesColor(plan.Spec, r.opts.Mode)
	if err != nil {
		return err
	}
	th := themeFor(r.opts.Mode)
	lo, hi := ValueRange(plotValues(plan))

	graph := chart.Chart{
		Title:      plan.Title,
		TitleStyle: chart.Style{FontColor: th.Foreground},
		Width:      GoChartWidth,
		Height:     GoChartHeight,
		Background: chart.Style{
			FillColor: th.Background,
			Padding:   chart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: th.Background},
		XAxis: chart.XAxis{
			Name:           "Date",
			NameStyle:      chart.Style{FontColor: th.Foreground},
			Style:          chart.Style{FontColor: th.Foreground, StrokeColor: th.Foreground, FontSize: 8, TextRotationDegrees: 45},
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(plan.XRange.Start), Max: chart.TimeToFloat64(plan.XRange.End)},
			Ticks:          r.dateTicks(plan.XRange),
			GridMajorStyle: chart.Style{StrokeColor: th.Grid, StrokeWidth: 0.5},
		},
		YAxis: chart.YAxis{
			Name:           plan.Spec.YLabel,
			NameStyle:      chart.Style{FontColor: th.Foreground},
			Style:          chart.Style{FontColor: th.Foreground, StrokeColor: th.Foreground},
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks:          integerTicks(lo, hi),
			GridMajorStyle: chart.Style{StrokeColor: th.Grid, StrokeWidth: 0.5},
		},
	}

	if plan.Curve != nil {
		graph.Series = append(graph.Series, curveSeries(plan, color))
	}
	// Scatter is appended last so markers sit above the curve.
	graph.Series = append(graph.Series, scatterSeries(plan, color))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	provider := chart.SVG
	if format == schema.PNGFormat {
		provider = chart.PNG
	}
	if err := graph.Render(provider, f); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return f.Close()
}

// go-chart takes the axis range from the outermost ticks and ignores
// Range once Ticks is set, so both tick helpers pin the range ends.

func (r *GoChartRenderer) dateTicks(window schema.Window) []chart.Tick {
	var ticks []chart.Tick
	for _, dt := range WeekdayTicks(window, r.opts.Weekday, r.opts.DateFormat) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(dt.Date), Label: dt.Label})
	}
	return pinEnds(ticks, chart.TimeToFloat64(window.Start), chart.TimeToFloat64(window.End))
}

func integerTicks(lo, hi float64) []chart.Tick {
	var ticks []chart.Tick
	for _, v := range IntegerTicks(lo, hi) {
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', 0, 64)})
	}
	return pinEnds(ticks, lo, hi)
}

// pinEnds adds unlabelled ticks at lo and hi unless sorted ticks
// already reach them.
func pinEnds(ticks []chart.Tick, lo, hi float64) []chart.Tick {
	if len(ticks) == 0 || ticks[0].Value > lo {
		ticks = append([]chart.Tick{{Value: lo}}, ticks...)
	}
	if ticks[len(ticks)-1].Value < hi {
		ticks = append(ticks, chart.Tick{Value: hi})
	}
	return ticks
}

func curveSeries(plan schema.ChartPlan, color drawing.Color) chart.TimeSeries {
	xs := make([]time.Time, len(plan.Curve))
	ys := make([]float64, len(plan.Curve))
	for i, c := range plan.Curve {
		xs[i] = core.FromDayOrdinal(c.X)
		ys[i] = c.Y
	}
	return chart.TimeSeries{
		Name:    plan.Title,
		Style:   chart.Style{StrokeColor: color, StrokeWidth: 2.5},
		XValues: xs,
		YValues: ys,
	}
}

func scatterSeries(plan schema.ChartPlan, color drawing.Color) chart.TimeSeries {
	xs := make([]time.Time, len(plan.Points))
	ys := make([]float64, len(plan.Points))
	for i, p := range plan.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return chart.TimeSeries{
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    color,
		},
		XValues: xs,
		YValues: ys,
	}
}

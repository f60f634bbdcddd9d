package render

import (
	"math"

	"github.com/huangsam/repulse/core"
	"github.com/huangsam/repulse/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure geometry of the gonum backend.
const (
	GonumWidth  = 7 * vg.Inch
	GonumHeight = 5 * vg.Inch
)

// GonumRenderer draws charts with gonum.org/v1/plot.
type GonumRenderer struct {
	opts Options
}

// Render implements contract.ChartRenderer.
func (r *GonumRenderer) Render(plan schema.ChartPlan, path string) error {
	if _, err := checkPlan(plan, path); err != nil {
		return err
	}
	color, err := seriesColor(plan.Spec, r.opts.Mode)
	if err != nil {
		return err
	}
	th := themeFor(r.opts.Mode)

	p := plot.New()
	p.BackgroundColor = th.Background
	p.Title.Text = plan.Title
	p.Title.TextStyle.Color = th.Foreground
	p.X.Label.Text = "Date"
	p.Y.Label.Text = plan.Spec.YLabel
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = th.Foreground
		ax.Label.TextStyle.Color = th.Foreground
		ax.Tick.Label.Color = th.Foreground
		ax.Tick.LineStyle.Color = th.Foreground
	}

	p.X.Min = core.DayOrdinal(plan.XRange.Start)
	p.X.Max = core.DayOrdinal(plan.XRange.End)
	p.X.Tick.Marker = WeekdayTicker{Weekday: r.opts.Weekday, Format: r.opts.DateFormat}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(8)

	p.Y.Min, p.Y.Max = ValueRange(plotValues(plan))
	p.Y.Tick.Marker = IntegerTicker{}

	grid := plotter.NewGrid()
	grid.Vertical.Color = th.Grid
	grid.Vertical.Width = vg.Points(0.5)
	grid.Horizontal.Color = th.Grid
	grid.Horizontal.Width = vg.Points(0.5)
	p.Add(grid)

	if plan.Curve != nil {
		xys := make(plotter.XYs, len(plan.Curve))
		for i, c := range plan.Curve {
			xys[i] = plotter.XY{X: c.X, Y: c.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = color
		line.LineStyle.Width = vg.Points(2.5)
		p.Add(line)
	}

	pts := make(plotter.XYs, len(plan.Points))
	for i, pt := range plan.Points {
		pts[i] = plotter.XY{X: core.DayOrdinal(pt.X), Y: pt.Y}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle = draw.GlyphStyle{Color: color, Radius: vg.Points(3.5), Shape: glyphFor(plan.Spec.Marker)}
	// Added last so markers sit above the curve.
	p.Add(scatter)

	return p.Save(GonumWidth, GonumHeight, path)
}

// glyphFor maps a marker code to a gonum glyph.
func glyphFor(m schema.Marker) draw.GlyphDrawer {
	switch m {
	case schema.SquareMarker:
		return draw.BoxGlyph{}
	case schema.StarMarker:
		return StarGlyph{}
	case schema.TriangleMarker:
		return draw.TriangleGlyph{}
	case schema.PlusMarker:
		return draw.PlusGlyph{}
	case schema.CrossMarker:
		return draw.CrossGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

// StarGlyph is a filled five-pointed star.
type StarGlyph struct{}

// DrawGlyph implements draw.GlyphDrawer.
func (StarGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	outer := float64(sty.Radius) * 1.3
	inner := outer * 0.4

	var path vg.Path
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := math.Pi/2 + float64(i)*math.Pi/5
		v := vg.Point{
			X: pt.X + vg.Length(radius*math.Cos(angle)),
			Y: pt.Y + vg.Length(radius*math.Sin(angle)),
		}
		if i == 0 {
			path.Move(v)
		} else {
			path.Line(v)
		}
	}
	path.Close()
	c.Fill(path)
}

package schema

import (
	"fmt"
	"strings"
)

// ChartSpec declares one chart of a render pass.
// Title is a template where {repo} is replaced by the display name.
type ChartSpec struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	YLabel     string   `json:"y_label"`
	Filename   string   `json:"filename"` // without extension
	Marker     Marker   `json:"marker"`
	Quantity   Quantity `json:"quantity"`
	Column     Column   `json:"column"`
	LightColor string   `json:"light_color"`
	DarkColor  string   `json:"dark_color"`
	Enabled    bool     `json:"enabled"`
}

// ChartPlan is everything a renderer needs to draw one chart.
type ChartPlan struct {
	Spec       ChartSpec      `json:"spec"`
	Title      string         `json:"title"`
	Points     []SampledPoint `json:"points"`
	Curve      SmoothedCurve  `json:"curve,omitempty"`
	XRange     Window         `json:"x_range"`
	Skipped    bool           `json:"skipped"`
	SkipReason string         `json:"skip_reason,omitempty"`
}

// DefaultChartSpecs returns the chart declarations in render order.
func DefaultChartSpecs() []ChartSpec {
	return []ChartSpec{
		{
			Name: "daily_clones", Title: "{repo} Daily Clones Over Time", YLabel: "Number of Clones",
			Filename: "daily_clones", Marker: CircleMarker, Quantity: DailyQuantity, Column: ClonesColumn,
			LightColor: "blue", DarkColor: "cyan",
		},
		{
			Name: "daily_views", Title: "{repo} Daily Views Over Time", YLabel: "Number of Views",
			Filename: "daily_views", Marker: SquareMarker, Quantity: DailyQuantity, Column: ViewsColumn,
			LightColor: "green", DarkColor: "lime",
		},
		{
			Name: "total_clones", Title: "Total {repo} Clones", YLabel: "Clones",
			Filename: "total_clones", Marker: CircleMarker, Quantity: CumulativeSumQuantity, Column: ClonesColumn,
			LightColor: "#2ea44f", DarkColor: "#2ea44f", Enabled: true,
		},
		{
			Name: "total_views", Title: "Total {repo} Views Over Time", YLabel: "Total Views",
			Filename: "total_views", Marker: SquareMarker, Quantity: CumulativeSumQuantity, Column: ViewsColumn,
			LightColor: "green", DarkColor: "lime",
		},
		{
			Name: "total_downloads", Title: "Total {repo} Downloads", YLabel: "Downloads",
			Filename: "total_downloads", Marker: CircleMarker, Quantity: SnapshotQuantity, Column: DownloadsColumn,
			LightColor: "#1793d1", DarkColor: "#1793d1", Enabled: true,
		},
		{
			Name: "total_stars", Title: "Total {repo} Stars Over Time", YLabel: "Total Stars",
			Filename: "total_stars", Marker: StarMarker, Quantity: SnapshotQuantity, Column: StarsColumn,
			LightColor: "gold", DarkColor: "gold",
		},
	}
}

// DefaultCompositeCharts names the charts glued into the combined image.
var DefaultCompositeCharts = []string{"total_downloads", "total_clones"}

// EnableCharts returns a copy of specs where only the named charts are enabled.
// An empty names list keeps the declared defaults.
func EnableCharts(specs []ChartSpec, names []string) ([]ChartSpec, error) {
	out := make([]ChartSpec, len(specs))
	copy(out, specs)
	if len(names) == 0 {
		return out, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(strings.TrimSpace(n))] = true
	}
	for i := range out {
		out[i].Enabled = wanted[out[i].Name]
		delete(wanted, out[i].Name)
	}
	for n := range wanted {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, n)
	}
	return out, nil
}

// LookupChart finds a chart declaration by name.
func LookupChart(specs []ChartSpec, name string) (ChartSpec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return ChartSpec{}, false
}

// TitleFor renders the title template for a repository display name.
func (s ChartSpec) TitleFor(repo string) string {
	return strings.ReplaceAll(s.Title, "{repo}", repo)
}

// ColorFor returns the color used in the given display mode.
func (s ChartSpec) ColorFor(mode DisplayMode) string {
	if mode == DarkMode {
		return s.DarkColor
	}
	return s.LightColor
}

// FileFor returns the output file name for a format.
func (s ChartSpec) FileFor(format OutputFormat) string {
	return s.Filename + "." + string(format)
}

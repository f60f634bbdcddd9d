package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
)

// Pipeline runs one render pass over the stored traffic series.
type Pipeline struct {
	Config     *contract.Config
	Loader     contract.SeriesLoader
	Renderer   contract.ChartRenderer
	Compositor contract.Compositor // optional; nil skips the combined image
}

// Run loads the series once, renders every enabled chart, glues the
// configured charts together and writes the badge summary.
// Per-chart failures are recorded on the report and do not stop the run.
func (p *Pipeline) Run(ctx context.Context) (schema.RunReport, error) {
	cfg := p.Config
	report := schema.RunReport{Repo: cfg.Repo, Weekday: cfg.Weekday.String()}
	logf := progressLogger(ctx)
	logf("📅 Ticking every %s", cfg.Weekday)

	series, err := p.Loader.LoadSeries(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to load traffic series: %w", err)
	}
	logf("🔎 Loaded %d days of traffic for %s", len(series), cfg.Repo)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return report, fmt.Errorf("failed to create output directory: %w", err)
	}

	rendered := make(map[string]string)
	opts := PlanOptionsFromConfig(cfg)
	for _, spec := range cfg.EnabledCharts() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		outcome := p.renderChart(series, spec, opts, logf)
		if outcome.Path != "" && outcome.Error == "" {
			rendered[spec.Name] = outcome.Path
		}
		report.Charts = append(report.Charts, outcome)
	}

	report.Composite = p.composite(rendered, logf)

	summary := Summarize(series)
	if err := WriteBadge(cfg.BadgeFile, summary); err != nil {
		return report, fmt.Errorf("failed to write badge data: %w", err)
	}
	report.Badge = &summary
	report.BadgePath = cfg.BadgeFile
	logf("💾 Badge data written to %s", cfg.BadgeFile)
	return report, nil
}

// renderChart plans and draws a single chart.
func (p *Pipeline) renderChart(series schema.TrafficSeries, spec schema.ChartSpec, opts PlanOptions, logf func(string, ...any)) schema.ChartOutcome {
	plan, err := PlanChart(series, spec, opts)
	outcome := schema.OutcomeFromPlan(plan)
	if err != nil {
		contract.LogWarn("failed to plan "+spec.Name, err)
		outcome.Error = err.Error()
		return outcome
	}
	if plan.Skipped {
		contract.LogWarn(fmt.Sprintf("Skipping %s - %s", spec.Name, plan.SkipReason), nil)
		return outcome
	}

	path := p.Config.ChartPath(spec)
	outcome.Path = path
	if err := p.Renderer.Render(plan, path); err != nil {
		contract.LogWarn("failed to render "+spec.Name, err)
		outcome.Error = err.Error()
		return outcome
	}
	logf("📊 Graph saved as %s", path)
	return outcome
}

// composite glues the rendered charts named in the config. It returns the
// output path, or "" when nothing was written.
func (p *Pipeline) composite(rendered map[string]string, logf func(string, ...any)) string {
	cfg := p.Config
	if p.Compositor == nil || len(cfg.Composite) == 0 {
		return ""
	}
	if cfg.Format != schema.SVGFormat {
		contract.LogWarn(fmt.Sprintf("Skipping %s - charts are %s, not svg", cfg.CompositeFile, cfg.Format), nil)
		return ""
	}

	var paths []string
	for _, name := range cfg.Composite {
		if path, ok := rendered[name]; ok {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		contract.LogWarn(fmt.Sprintf("Skipping %s - no rendered charts to combine", cfg.CompositeFile), nil)
		return ""
	}

	out := filepath.Join(cfg.OutputDir, cfg.CompositeFile)
	layout, err := p.Compositor.Compose(paths, out)
	if err != nil {
		contract.LogWarn("failed to combine charts", err)
		return ""
	}
	logf("🧩 Combined %d charts into %s (%.0fx%.0f)", len(layout.Entries), out, layout.Width, layout.Height)
	return out
}

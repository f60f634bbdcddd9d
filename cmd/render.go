package cmd

import (
	"github.com/huangsam/repulse/core"
	"github.com/huangsam/repulse/internal/composite"
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/internal/outwriter"
	"github.com/huangsam/repulse/internal/render"
	"github.com/spf13/cobra"
)

// renderCmd runs the whole chart pipeline.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render every enabled traffic chart and the badge data.",
	Long: `Load the traffic series once, then for every enabled chart:

- sample the series on the configured weekday
- fit a cubic spline through the samples (four or more points)
- draw the chart to output-dir as svg or png

SVG charts named in --composite are glued side by side into composite-file,
and the latest clone and download totals are written to badge-file.

Charts with no data on the weekday are skipped with a warning.

Examples:
  # Render the default charts for today's weekday
  REPO=octo/widgets repulse render

  # Dark mode, every Monday, with the go-chart backend
  repulse render --repo octo/widgets --dark-mode yes --weekday monday --renderer gochart

  # Render all charts as png
  repulse render --charts daily_clones,daily_views,total_clones,total_views,total_downloads,total_stars --format png`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		loader := openStore()
		defer func() { _ = loader.Close() }()

		renderer, err := render.New(cfg.Renderer, render.OptionsFromConfig(cfg))
		if err != nil {
			contract.LogFatal("Cannot create renderer", err)
		}
		p := &core.Pipeline{
			Config:     cfg,
			Loader:     loader,
			Renderer:   renderer,
			Compositor: composite.SVGCompositor{},
		}
		report, err := p.Run(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot render charts", err)
		}
		if err := outwriter.NewOutWriter(cfg).WriteReport(report); err != nil {
			contract.LogFatal("Cannot write run report", err)
		}
	},
}

// planCmd computes chart plans without drawing.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what each enabled chart would plot without drawing it.",
	Long: `Compute the sampled points, x window and curve of every enabled chart
and print them as a table, CSV or JSON. Nothing is written to output-dir.

Examples:
  # Check which Mondays would be plotted
  repulse plan --repo octo/widgets --weekday monday

  # Full plans, including curve positions, as JSON
  repulse plan --repo octo/widgets --output json --output-file plans.json`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		loader := openStore()
		defer func() { _ = loader.Close() }()

		series, err := loader.LoadSeries(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load traffic series", err)
		}
		plans, err := core.PlanCharts(series, cfg.Charts, core.PlanOptionsFromConfig(cfg))
		if err != nil {
			contract.LogFatal("Cannot plan charts", err)
		}
		if err := outwriter.NewOutWriter(cfg).WritePlans(plans); err != nil {
			contract.LogFatal("Cannot write chart plans", err)
		}
	},
}

// badgeCmd writes only the badge summary.
var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Write the badge data without rendering charts.",
	Long: `Summarize the latest clone and download totals into badge-file.

Examples:
  repulse badge --badge-file assets/badge_data.json`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		loader := openStore()
		defer func() { _ = loader.Close() }()

		series, err := loader.LoadSeries(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load traffic series", err)
		}
		summary := core.Summarize(series)
		if err := core.WriteBadge(cfg.BadgeFile, summary); err != nil {
			contract.LogFatal("Cannot write badge data", err)
		}
		contract.LogInfo("💾 Badge data written to %s", cfg.BadgeFile)
		if err := outwriter.NewOutWriter(cfg).WriteBadge(summary); err != nil {
			contract.LogFatal("Cannot write badge summary", err)
		}
	},
}

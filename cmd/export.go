package cmd

import (
	"errors"

	"github.com/huangsam/repulse/core"
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/internal/parquet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd exports traffic data to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the traffic series to Parquet for BI tools and analytics",
	Long: `Write the daily traffic series (or, with --plans, the sampled points of
every enabled chart) to a Parquet file.

Requires: --output-file parameter

Examples:
  # Export the raw series
  repulse export --output-file traffic.parquet

  # Export what the charts plot, for DuckDB
  repulse export --plans --repo octo/widgets --weekday monday --output-file points.parquet
  duckdb -c "SELECT chart, date, value FROM read_parquet('points.parquet')"`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("plans") {
			return sharedSetup(cmd, args)
		}
		return storeSetup(cmd, args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.OutputFile == "" {
			contract.LogFatal("Cannot export", errors.New("--output-file is required"))
		}
		loader := openStore()
		defer func() { _ = loader.Close() }()

		series, err := loader.LoadSeries(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load traffic series", err)
		}

		if viper.GetBool("plans") {
			plans, err := core.PlanCharts(series, cfg.Charts, core.PlanOptionsFromConfig(cfg))
			if err != nil {
				contract.LogFatal("Cannot plan charts", err)
			}
			if err := parquet.WritePlanPointsParquet(plans, cfg.OutputFile); err != nil {
				contract.LogFatal("Failed to export chart points", err)
			}
		} else if err := parquet.WriteSeriesParquet(series, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export traffic series", err)
		}
		contract.LogInfo("📦 Exported to %s", cfg.OutputFile)
	},
}

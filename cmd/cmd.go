// Package cmd defines the command-line interface for repulse.
package cmd

import (
	"strings"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the db subcommands to the parent db command
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("repo", "", "Repository display name used in chart titles (env REPO)")
	rootCmd.PersistentFlags().String("dark-mode", "", "Draw on a black background (yes/no/true/false/1/0, env DARK_MODE)")
	rootCmd.PersistentFlags().String("weekday", "", "Weekday to sample on, as a name or 0-6 with 0 = Monday (default today)")
	rootCmd.PersistentFlags().String("format", string(schema.SVGFormat), "Chart image format: svg or png")
	rootCmd.PersistentFlags().String("renderer", string(schema.GonumBackend), "Charting backend: gonum or gochart")
	rootCmd.PersistentFlags().String("smooth", "yes", "Draw a cubic spline through the sampled points (yes/no)")
	rootCmd.PersistentFlags().Int("samples", schema.DefaultCurveSamples, "Number of positions each curve is evaluated at")
	rootCmd.PersistentFlags().String("charts", "", "Comma-separated chart names to render (default total_clones,total_downloads)")
	rootCmd.PersistentFlags().String("composite", strings.Join(schema.DefaultCompositeCharts, ","), "Comma-separated charts glued into the combined image")
	rootCmd.PersistentFlags().String("composite-file", contract.DefaultCompositeFile, "File name of the combined image inside output-dir")
	rootCmd.PersistentFlags().String("output-dir", contract.DefaultOutputDir, "Directory charts are written to")
	rootCmd.PersistentFlags().String("badge-file", contract.DefaultBadgeFile, "Path of the badge data JSON")
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Traffic database: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string (sqlite path, or DSN for mysql/postgresql)")
	rootCmd.PersistentFlags().String("output", string(schema.TextReport), "Report format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of dbMigrateCmd to Viper
	dbMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(dbMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding db migrate flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().Bool("plans", false, "Export the sampled points of every enabled chart instead of the raw series")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}

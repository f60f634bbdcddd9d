package cmd

import (
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/internal/outwriter"
	"github.com/huangsam/repulse/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dbCmd focused on traffic database management.
//
// Note: db subcommands use storeSetup instead of the full sharedSetup, so
// they work without a repo name.
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the traffic database",
	Long: `Manage the database holding the daily traffic table.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  migrate - Run database schema migrations
  status  - Show row count and date range of the traffic table`,
}

// dbMigrateCmd runs database migrations for the traffic table.
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Create or change the traffic table schema.

Existing tables written by the traffic collector are left untouched.
By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  repulse db migrate

  # Postgres
  repulse db migrate --backend postgresql --db-connect "host=localhost user=repulse dbname=traffic"

  # Rollback to initial state
  repulse db migrate --target-version 0`,
	PreRunE: storeSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := store.Migrate(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// dbStatusCmd shows traffic table status.
var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display traffic table statistics",
	Long: `Show the backend, row count and first/last day of the traffic table.

Examples:
  repulse db status
  repulse db status --output json`,
	PreRunE: storeSetup,
	Run: func(_ *cobra.Command, _ []string) {
		s := openStore()
		defer func() { _ = s.Close() }()

		status, err := s.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get traffic status", err)
		}
		if err := outwriter.NewOutWriter(cfg).WriteStatus(status); err != nil {
			contract.LogFatal("Failed to write traffic status", err)
		}
	},
}

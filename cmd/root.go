package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/internal/store"
	"github.com/huangsam/repulse/schema"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "repulse",
	Short:              "Render GitHub traffic charts from a local traffic database.",
	Long:               `Repulse turns the daily clone, view, download and star counters of a repository into weekly charts and badge data.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in .env, config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			contract.LogWarn("No .env file found, using environment variables", nil)
		} else {
			contract.LogWarn("Could not read .env file", err)
		}
	}

	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".repulse") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("REPULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// The collector writes plain REPO and DARK_MODE into .env
	_ = viper.BindEnv("repo", "REPULSE_REPO", "REPO")
	_ = viper.BindEnv("dark-mode", "REPULSE_DARK_MODE", "DARK_MODE")

	// Set defaults in Viper
	viper.SetDefault("format", schema.SVGFormat)
	viper.SetDefault("renderer", schema.GonumBackend)
	viper.SetDefault("smooth", "yes")
	viper.SetDefault("samples", schema.DefaultCurveSamples)
	viper.SetDefault("output-dir", contract.DefaultOutputDir)
	viper.SetDefault("badge-file", contract.DefaultBadgeFile)
	viper.SetDefault("composite", strings.Join(schema.DefaultCompositeCharts, ","))
	viper.SetDefault("composite-file", contract.DefaultCompositeFile)
	viper.SetDefault("backend", schema.SQLiteBackend)
	viper.SetDefault("output", schema.TextReport)
	viper.SetDefault("color", "yes")
}

// loadInput merges defaults, file, env and flags into the raw input struct.
func loadInput() error {
	// 1. Read config file.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return nil
}

// sharedSetup unmarshals config and runs full validation for rendering commands.
func sharedSetup(_ *cobra.Command, _ []string) error {
	if err := loadInput(); err != nil {
		return err
	}
	if err := contract.ProcessAndValidate(cfg, input, time.Now()); err != nil {
		if errors.Is(err, schema.ErrMissingRepo) {
			contract.LogFatal("Cannot render charts", err)
		}
		return err
	}
	return nil
}

// storeSetup validates only the store and output settings.
// It is used by commands that never draw, so no repo name is required.
func storeSetup(_ *cobra.Command, _ []string) error {
	if err := loadInput(); err != nil {
		return err
	}
	return contract.ProcessStoreOnly(cfg, input)
}

// openStore connects to the configured traffic database.
func openStore() *store.TrafficStore {
	s, err := store.NewTrafficStore(cfg.Backend, cfg.DBConnect)
	if err != nil {
		contract.LogFatal("Cannot open traffic database", err)
	}
	return s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/repulse/schema"
)

// Default values for configuration.
const (
	DefaultDBPath        = "data/github_traffic.db"
	DefaultOutputDir     = "assets/graphs"
	DefaultBadgeFile     = "assets/badge_data.json"
	DefaultCompositeFile = "combined_graphs.svg"
	MaxCurveSamples      = 5000
)

// Config holds the runtime configuration for a render pass.
// This struct is the "final, validated" config.
type Config struct {
	Repo      string
	Mode      schema.DisplayMode
	Weekday   time.Weekday
	Format    schema.OutputFormat
	Renderer  schema.RenderBackend
	Smooth    bool
	Samples   int
	Charts    []schema.ChartSpec
	OutputDir string
	BadgeFile string

	Composite     []string
	CompositeFile string

	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	Report     schema.ReportMode
	OutputFile string
	UseColors  bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Repo          string `mapstructure:"repo"`
	DarkMode      string `mapstructure:"dark-mode"`
	Weekday       string `mapstructure:"weekday"`
	Format        string `mapstructure:"format"`
	Renderer      string `mapstructure:"renderer"`
	Smooth        string `mapstructure:"smooth"`
	Samples       int    `mapstructure:"samples"`
	Charts        string `mapstructure:"charts"`
	OutputDir     string `mapstructure:"output-dir"`
	BadgeFile     string `mapstructure:"badge-file"`
	Composite     string `mapstructure:"composite"`
	CompositeFile string `mapstructure:"composite-file"`
	Backend       string `mapstructure:"backend"`
	DBConnect     string `mapstructure:"db-connect"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Color         string `mapstructure:"color"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Charts != nil {
		clone.Charts = make([]schema.ChartSpec, len(c.Charts))
		copy(clone.Charts, c.Charts)
	}
	if c.Composite != nil {
		clone.Composite = make([]string, len(c.Composite))
		copy(clone.Composite, c.Composite)
	}
	return &clone
}

// EnabledCharts returns the chart declarations that take part in a run.
func (c *Config) EnabledCharts() []schema.ChartSpec {
	var out []schema.ChartSpec
	for _, s := range c.Charts {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// ChartPath returns where a chart is written.
func (c *Config) ChartPath(spec schema.ChartSpec) string {
	return filepath.Join(c.OutputDir, spec.FileFor(c.Format))
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. now supplies the default weekday.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	if err := validateRepo(cfg, input); err != nil {
		return err
	}
	if err := validateRenderInputs(cfg, input, now); err != nil {
		return err
	}
	if err := processCharts(cfg, input); err != nil {
		return err
	}
	if err := processPaths(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return validateReportInputs(cfg, input)
}

// ProcessStoreOnly validates just the store settings, for commands that
// never render.
func ProcessStoreOnly(cfg *Config, input *ConfigRawInput) error {
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return validateReportInputs(cfg, input)
}

// validateRepo checks the display name, the only fatal precondition.
func validateRepo(cfg *Config, input *ConfigRawInput) error {
	cfg.Repo = strings.TrimSpace(input.Repo)
	if cfg.Repo == "" {
		return fmt.Errorf("%w. Set REPO in .env or as an environment variable", schema.ErrMissingRepo)
	}
	return nil
}

// validateRenderInputs processes display and drawing options.
func validateRenderInputs(cfg *Config, input *ConfigRawInput, now time.Time) error {
	// --- 1. Display mode ---
	cfg.Mode = schema.LightMode
	if input.DarkMode != "" {
		dark, err := ParseBoolString(input.DarkMode)
		if err != nil {
			return fmt.Errorf("invalid dark-mode value: %w", err)
		}
		if dark {
			cfg.Mode = schema.DarkMode
		}
	}

	// --- 2. Weekday ---
	cfg.Weekday = now.Weekday()
	if input.Weekday != "" {
		d, err := schema.ParseWeekday(input.Weekday)
		if err != nil {
			return err
		}
		cfg.Weekday = d
	}

	// --- 3. Format and renderer ---
	cfg.Format = schema.OutputFormat(strings.ToLower(input.Format))
	if cfg.Format == "" {
		cfg.Format = schema.SVGFormat
	}
	if _, ok := schema.ValidOutputFormats[cfg.Format]; !ok {
		return fmt.Errorf("invalid format '%s'. must be svg, png", input.Format)
	}

	cfg.Renderer = schema.RenderBackend(strings.ToLower(input.Renderer))
	if cfg.Renderer == "" {
		cfg.Renderer = schema.GonumBackend
	}
	if _, ok := schema.ValidRenderBackends[cfg.Renderer]; !ok {
		return fmt.Errorf("invalid renderer '%s'. must be gonum, gochart", input.Renderer)
	}

	// --- 4. Smoothing ---
	cfg.Smooth = true
	if input.Smooth != "" {
		smooth, err := ParseBoolString(input.Smooth)
		if err != nil {
			return fmt.Errorf("invalid smooth value: %w", err)
		}
		cfg.Smooth = smooth
	}

	cfg.Samples = input.Samples
	if cfg.Samples == 0 {
		cfg.Samples = schema.DefaultCurveSamples
	}
	if cfg.Samples < 2 || cfg.Samples > MaxCurveSamples {
		return fmt.Errorf("samples must be between 2 and %d (received %d)", MaxCurveSamples, input.Samples)
	}
	return nil
}

// processCharts resolves the enabled chart set and the composite inputs.
func processCharts(cfg *Config, input *ConfigRawInput) error {
	charts, err := schema.EnableCharts(schema.DefaultChartSpecs(), SplitList(input.Charts))
	if err != nil {
		return err
	}
	cfg.Charts = charts

	cfg.Composite = SplitList(input.Composite)
	if cfg.Composite == nil {
		cfg.Composite = append([]string(nil), schema.DefaultCompositeCharts...)
	}
	for _, name := range cfg.Composite {
		if _, ok := schema.LookupChart(cfg.Charts, name); !ok {
			return fmt.Errorf("composite: %w: %s", schema.ErrUnknownChart, name)
		}
	}
	return nil
}

// processPaths fills output locations with defaults.
func processPaths(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputDir = defaultString(input.OutputDir, DefaultOutputDir)
	cfg.BadgeFile = defaultString(input.BadgeFile, DefaultBadgeFile)
	cfg.CompositeFile = defaultString(input.CompositeFile, DefaultCompositeFile)
	if filepath.Base(cfg.CompositeFile) != cfg.CompositeFile {
		return fmt.Errorf("composite-file must be a file name inside output-dir (received %q)", cfg.CompositeFile)
	}
	return nil
}

// validateBackendConfig validates the traffic store configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.Backend = schema.DatabaseBackend(strings.ToLower(input.Backend))
	if cfg.Backend == "" {
		cfg.Backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid backend '%s'. must be sqlite, mysql, postgresql", input.Backend)
	}
	cfg.DBConnect = input.DBConnect
	if cfg.Backend == schema.SQLiteBackend && cfg.DBConnect == "" {
		cfg.DBConnect = DefaultDBPath
	}
	return ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect)
}

// validateReportInputs processes how command results are printed.
func validateReportInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Report = schema.ReportMode(strings.ToLower(input.Output))
	if cfg.Report == "" {
		cfg.Report = schema.TextReport
	}
	if _, ok := schema.ValidReportModes[cfg.Report]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.UseColors = true
	if input.Color != "" {
		colors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
		cfg.UseColors = colors
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

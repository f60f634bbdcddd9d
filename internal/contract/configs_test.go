package contract

import (
	"testing"
	"time"

	"github.com/huangsam/repulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-03 was a Wednesday.
var wednesday = time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		input       *ConfigRawInput
		expectError error
		check       func(*testing.T, *Config)
	}{
		{
			name:  "valid minimal config",
			input: &ConfigRawInput{Repo: "octo/widgets"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "octo/widgets", cfg.Repo)
				assert.Equal(t, schema.LightMode, cfg.Mode)
				assert.Equal(t, time.Wednesday, cfg.Weekday)
				assert.Equal(t, schema.SVGFormat, cfg.Format)
				assert.Equal(t, schema.GonumBackend, cfg.Renderer)
				assert.True(t, cfg.Smooth)
				assert.Equal(t, schema.DefaultCurveSamples, cfg.Samples)
				assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
				assert.Equal(t, DefaultBadgeFile, cfg.BadgeFile)
				assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
				assert.Equal(t, DefaultDBPath, cfg.DBConnect)
				assert.Equal(t, schema.DefaultCompositeCharts, cfg.Composite)
				assert.Equal(t, schema.TextReport, cfg.Report)
				assert.Len(t, cfg.EnabledCharts(), 2)
			},
		},
		{
			name:        "missing repo",
			input:       &ConfigRawInput{Repo: "  "},
			expectError: schema.ErrMissingRepo,
		},
		{
			name:  "dark mode and explicit weekday",
			input: &ConfigRawInput{Repo: "r", DarkMode: "true", Weekday: "fri"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.DarkMode, cfg.Mode)
				assert.Equal(t, time.Friday, cfg.Weekday)
			},
		},
		{
			name:  "numeric weekday counts from monday",
			input: &ConfigRawInput{Repo: "r", Weekday: "0"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, time.Monday, cfg.Weekday)
			},
		},
		{
			name:  "dark mode off",
			input: &ConfigRawInput{Repo: "r", DarkMode: "no"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.LightMode, cfg.Mode)
			},
		},
		{
			name:        "invalid weekday",
			input:       &ConfigRawInput{Repo: "r", Weekday: "someday"},
			expectError: schema.ErrInvalidWeekday,
		},
		{
			name:        "unknown chart",
			input:       &ConfigRawInput{Repo: "r", Charts: "total_clones,bogus"},
			expectError: schema.ErrUnknownChart,
		},
		{
			name:  "charts override enables set",
			input: &ConfigRawInput{Repo: "r", Charts: "daily_views,daily_clones", Composite: "daily_views"},
			check: func(t *testing.T, cfg *Config) {
				var names []string
				for _, s := range cfg.EnabledCharts() {
					names = append(names, s.Name)
				}
				assert.ElementsMatch(t, []string{"daily_views", "daily_clones"}, names)
				assert.Equal(t, []string{"daily_views"}, cfg.Composite)
			},
		},
		{
			name:  "png through gochart without smoothing",
			input: &ConfigRawInput{Repo: "r", Format: "PNG", Renderer: "gochart", Smooth: "0", Samples: 50},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.PNGFormat, cfg.Format)
				assert.Equal(t, schema.GoChartBackend, cfg.Renderer)
				assert.False(t, cfg.Smooth)
				assert.Equal(t, 50, cfg.Samples)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := ProcessAndValidate(cfg, tt.input, wednesday)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestProcessAndValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		input *ConfigRawInput
	}{
		{"bad format", &ConfigRawInput{Repo: "r", Format: "gif"}},
		{"bad renderer", &ConfigRawInput{Repo: "r", Renderer: "ascii"}},
		{"bad dark mode", &ConfigRawInput{Repo: "r", DarkMode: "dim"}},
		{"bad smooth", &ConfigRawInput{Repo: "r", Smooth: "sometimes"}},
		{"too few samples", &ConfigRawInput{Repo: "r", Samples: 1}},
		{"too many samples", &ConfigRawInput{Repo: "r", Samples: MaxCurveSamples + 1}},
		{"bad output", &ConfigRawInput{Repo: "r", Output: "xml"}},
		{"bad backend", &ConfigRawInput{Repo: "r", Backend: "oracle"}},
		{"nested composite file", &ConfigRawInput{Repo: "r", CompositeFile: "x/combined.svg"}},
		{"mysql without connection", &ConfigRawInput{Repo: "r", Backend: "mysql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ProcessAndValidate(&Config{}, tt.input, wednesday))
		})
	}
}

func TestProcessStoreOnly(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessStoreOnly(cfg, &ConfigRawInput{Output: "json"}))
	assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
	assert.Equal(t, DefaultDBPath, cfg.DBConnect)
	assert.Equal(t, schema.JSONReport, cfg.Report)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/traffic", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/traffic", true},
		{"mysql missing db", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=u dbname=traffic", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=traffic", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Repo: "r", Composite: []string{"views"}, Charts: schema.DefaultChartSpecs()}
	clone := cfg.Clone()
	clone.Composite[0] = "clones"
	clone.Charts[0].Enabled = !clone.Charts[0].Enabled
	assert.Equal(t, "views", cfg.Composite[0])
	assert.NotEqual(t, cfg.Charts[0].Enabled, clone.Charts[0].Enabled)
}

func TestChartPath(t *testing.T) {
	cfg := &Config{OutputDir: "out", Format: schema.PNGFormat}
	spec, ok := schema.LookupChart(schema.DefaultChartSpecs(), "daily_views")
	require.True(t, ok)
	assert.Equal(t, "out/daily_views.png", cfg.ChartPath(spec))
}

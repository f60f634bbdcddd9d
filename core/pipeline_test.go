package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, input *contract.ConfigRawInput) *contract.Config {
	t.Helper()
	dir := t.TempDir()
	if input.Repo == "" {
		input.Repo = "octo/widgets"
	}
	input.OutputDir = filepath.Join(dir, "graphs")
	input.BadgeFile = filepath.Join(dir, "badge_data.json")
	cfg := &contract.Config{}
	require.NoError(t, contract.ProcessAndValidate(cfg, input, day(0)))
	return cfg
}

// sixWeeks has daily clones and growing downloads over 42 days.
func sixWeeks() schema.TrafficSeries {
	return dailySeries(42, func(i int, r *schema.TrafficRecord) {
		r.Clones = 1
		r.TotalDownloads = int64(10 * (i + 1))
	})
}

func TestPipelineRun(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, &contract.ConfigRawInput{})

	loader := &contract.MockSeriesLoader{}
	renderer := &contract.MockChartRenderer{}
	compositor := &contract.MockCompositor{}

	downloads := filepath.Join(cfg.OutputDir, "total_downloads.svg")
	clones := filepath.Join(cfg.OutputDir, "total_clones.svg")
	loader.On("LoadSeries", ctx).Return(sixWeeks(), nil)
	renderer.On("Render", mock.AnythingOfType("schema.ChartPlan"), clones).Return(nil)
	renderer.On("Render", mock.AnythingOfType("schema.ChartPlan"), downloads).Return(nil)
	compositor.On("Compose", []string{downloads, clones}, filepath.Join(cfg.OutputDir, "combined_graphs.svg")).
		Return(schema.CompositeLayout{Width: 1008, Height: 360}, nil)

	p := &Pipeline{Config: cfg, Loader: loader, Renderer: renderer, Compositor: compositor}
	report, err := p.Run(ctx)
	require.NoError(t, err)

	require.Len(t, report.Charts, 2)
	assert.Equal(t, "total_clones", report.Charts[0].Name)
	assert.Equal(t, 6, report.Charts[0].Points)
	assert.True(t, report.Charts[0].Smoothed)
	assert.Equal(t, clones, report.Charts[0].Path)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "combined_graphs.svg"), report.Composite)
	require.NotNil(t, report.Badge)
	assert.Equal(t, schema.BadgeSummary{TotalClones: 42, TotalDownloads: 420}, *report.Badge)
	assert.FileExists(t, cfg.BadgeFile)
	assert.DirExists(t, cfg.OutputDir)

	loader.AssertExpectations(t)
	renderer.AssertExpectations(t)
	compositor.AssertExpectations(t)
}

func TestPipelineRun_SkipsAndFailures(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, &contract.ConfigRawInput{Charts: "total_clones,total_stars,total_downloads"})

	loader := &contract.MockSeriesLoader{}
	renderer := &contract.MockChartRenderer{}
	compositor := &contract.MockCompositor{}

	clones := filepath.Join(cfg.OutputDir, "total_clones.svg")
	downloads := filepath.Join(cfg.OutputDir, "total_downloads.svg")
	loader.On("LoadSeries", ctx).Return(sixWeeks(), nil)
	renderer.On("Render", mock.Anything, clones).Return(nil)
	renderer.On("Render", mock.Anything, downloads).Return(errors.New("disk full"))
	compositor.On("Compose", []string{clones}, mock.Anything).Return(schema.CompositeLayout{}, nil)

	p := &Pipeline{Config: cfg, Loader: loader, Renderer: renderer, Compositor: compositor}
	report, err := p.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Charts, 3)

	// Charts run in declaration order, not in the order they were enabled.
	names := make([]string, len(report.Charts))
	for i, c := range report.Charts {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"total_clones", "total_downloads", "total_stars"}, names)

	stars := outcomeNamed(t, report, "total_stars")
	assert.True(t, stars.Skipped)
	assert.Equal(t, SkipNoWeekdayData, stars.Reason)

	assert.Equal(t, "disk full", outcomeNamed(t, report, "total_downloads").Error)
	assert.Empty(t, outcomeNamed(t, report, "total_clones").Error)
	renderer.AssertNumberOfCalls(t, "Render", 2)
	compositor.AssertExpectations(t)
}

// outcomeNamed finds a chart outcome by name.
func outcomeNamed(t *testing.T, report schema.RunReport, name string) schema.ChartOutcome {
	t.Helper()
	for _, c := range report.Charts {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "missing outcome", "no chart named %s in report", name)
	return schema.ChartOutcome{}
}

func TestPipelineRun_PNGSkipsComposite(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, &contract.ConfigRawInput{Format: "png"})

	loader := &contract.MockSeriesLoader{}
	renderer := &contract.MockChartRenderer{}
	compositor := &contract.MockCompositor{}
	loader.On("LoadSeries", ctx).Return(sixWeeks(), nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return(nil)

	p := &Pipeline{Config: cfg, Loader: loader, Renderer: renderer, Compositor: compositor}
	report, err := p.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Composite)
	compositor.AssertNotCalled(t, "Compose", mock.Anything, mock.Anything)
}

func TestPipelineRun_EmptySeries(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, &contract.ConfigRawInput{})

	loader := &contract.MockSeriesLoader{}
	renderer := &contract.MockChartRenderer{}
	compositor := &contract.MockCompositor{}
	loader.On("LoadSeries", ctx).Return(schema.TrafficSeries{}, nil)

	p := &Pipeline{Config: cfg, Loader: loader, Renderer: renderer, Compositor: compositor}
	report, err := p.Run(ctx)
	require.NoError(t, err)
	for _, c := range report.Charts {
		assert.True(t, c.Skipped)
	}
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	compositor.AssertNotCalled(t, "Compose", mock.Anything, mock.Anything)

	data, err := os.ReadFile(cfg.BadgeFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_clones":0,"total_downloads":0}`, string(data))
}

func TestPipelineRun_LoaderFailure(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, &contract.ConfigRawInput{})

	loader := &contract.MockSeriesLoader{}
	loader.On("LoadSeries", ctx).Return(nil, errors.New("no such table: traffic"))

	p := &Pipeline{Config: cfg, Loader: loader, Renderer: &contract.MockChartRenderer{}}
	_, err := p.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
	assert.NoFileExists(t, cfg.BadgeFile)
}

func TestPipelineRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig(t, &contract.ConfigRawInput{})

	loader := &contract.MockSeriesLoader{}
	loader.On("LoadSeries", ctx).Return(sixWeeks(), nil)
	cancel()

	p := &Pipeline{Config: cfg, Loader: loader, Renderer: &contract.MockChartRenderer{}}
	_, err := p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

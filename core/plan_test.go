package core

import (
	"testing"
	"time"

	"github.com/huangsam/repulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanChart(t *testing.T) {
	opts := PlanOptions{Repo: "octo/widgets", Weekday: time.Monday, Smooth: true, Samples: 300}

	t.Run("one row gives one point and no curve", func(t *testing.T) {
		series := schema.TrafficSeries{{Date: day(0), Clones: 5, TotalDownloads: 100}}
		plan, err := PlanChart(series, specNamed(t, "total_clones"), opts)
		require.NoError(t, err)
		assert.False(t, plan.Skipped)
		assert.Len(t, plan.Points, 1)
		assert.Nil(t, plan.Curve)
		assert.Equal(t, schema.Window{Start: day(0), End: day(10)}, plan.XRange)
		assert.Equal(t, "Total octo/widgets Clones", plan.Title)
	})

	t.Run("two weekday matches in ten days", func(t *testing.T) {
		series := dailySeries(10, func(_ int, r *schema.TrafficRecord) { r.Clones = 2 })
		plan, err := PlanChart(series, specNamed(t, "daily_clones"), PlanOptions{Weekday: time.Tuesday, Smooth: true})
		require.NoError(t, err)
		assert.Len(t, plan.Points, 2)
		assert.Nil(t, plan.Curve)
	})

	t.Run("enough points are smoothed", func(t *testing.T) {
		plan, err := PlanChart(weeklySeries(1, 2, 3, 5, 8), specNamed(t, "total_downloads"), opts)
		require.NoError(t, err)
		assert.Len(t, plan.Curve, 300)
	})

	t.Run("smoothing disabled", func(t *testing.T) {
		noSmooth := opts
		noSmooth.Smooth = false
		plan, err := PlanChart(weeklySeries(1, 2, 3, 5, 8), specNamed(t, "total_downloads"), noSmooth)
		require.NoError(t, err)
		assert.Nil(t, plan.Curve)
	})

	t.Run("no matching weekday is skipped", func(t *testing.T) {
		plan, err := PlanChart(weeklySeries(1, 2), specNamed(t, "total_downloads"), PlanOptions{Weekday: time.Friday})
		require.NoError(t, err)
		assert.True(t, plan.Skipped)
		assert.Equal(t, SkipNoWeekdayData, plan.SkipReason)
		assert.Empty(t, plan.Points)
	})
}

func TestPlanCharts(t *testing.T) {
	specs, err := schema.EnableCharts(schema.DefaultChartSpecs(), []string{"total_stars", "total_clones"})
	require.NoError(t, err)

	plans, err := PlanCharts(weeklySeries(1, 2, 3), specs, PlanOptions{Weekday: time.Monday})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "total_clones", plans[0].Spec.Name)
	assert.Equal(t, "total_stars", plans[1].Spec.Name)
	assert.True(t, plans[1].Skipped)
}

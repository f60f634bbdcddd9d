package core

import (
	"fmt"
	"time"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
)

// SkipNoWeekdayData is the reason recorded when sampling leaves nothing.
const SkipNoWeekdayData = "no matching weekday data"

// PlanOptions controls how ChartPlans are computed.
type PlanOptions struct {
	Repo    string
	Weekday time.Weekday
	Smooth  bool
	Samples int
}

// PlanOptionsFromConfig extracts the planning options of a run.
func PlanOptionsFromConfig(cfg *contract.Config) PlanOptions {
	return PlanOptions{
		Repo:    cfg.Repo,
		Weekday: cfg.Weekday,
		Smooth:  cfg.Smooth,
		Samples: cfg.Samples,
	}
}

// PlanChart computes everything needed to draw one chart.
// An empty sample set produces a skipped plan, not an error.
func PlanChart(series schema.TrafficSeries, spec schema.ChartSpec, opts PlanOptions) (schema.ChartPlan, error) {
	plan := schema.ChartPlan{Spec: spec, Title: spec.TitleFor(opts.Repo)}

	points, xr := DerivePoints(series, spec, opts.Weekday)
	if len(points) == 0 {
		plan.Skipped = true
		plan.SkipReason = SkipNoWeekdayData
		return plan, nil
	}
	plan.Points = points
	plan.XRange = xr

	if opts.Smooth {
		curve, err := SmoothPoints(points, opts.Samples)
		if err != nil {
			return plan, fmt.Errorf("chart %s: %w", spec.Name, err)
		}
		plan.Curve = curve
	}
	return plan, nil
}

// PlanCharts plans every enabled chart in declaration order.
func PlanCharts(series schema.TrafficSeries, specs []schema.ChartSpec, opts PlanOptions) ([]schema.ChartPlan, error) {
	var plans []schema.ChartPlan
	for _, spec := range specs {
		if !spec.Enabled {
			continue
		}
		plan, err := PlanChart(series, spec, opts)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

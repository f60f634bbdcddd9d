package schema

import "time"

// BadgeSummary is the compact record consumed by README badges.
type BadgeSummary struct {
	TotalClones    int64 `json:"total_clones"`
	TotalDownloads int64 `json:"total_downloads"`
}

// CompositeEntry is one input of a combined image.
type CompositeEntry struct {
	Path   string  `json:"path"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Offset float64 `json:"offset"`
}

// CompositeLayout describes how inputs were arranged left to right.
type CompositeLayout struct {
	Entries []CompositeEntry `json:"entries"`
	Width   float64          `json:"width"`
	Height  float64          `json:"height"`
}

// ChartOutcome records what happened to one chart of a run.
type ChartOutcome struct {
	Name     string    `json:"name"`
	Path     string    `json:"path,omitempty"`
	Points   int       `json:"points"`
	Smoothed bool      `json:"smoothed"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Skipped  bool      `json:"skipped"`
	Reason   string    `json:"reason,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// RunReport summarizes one render pass.
type RunReport struct {
	Repo      string         `json:"repo"`
	Weekday   string         `json:"weekday"`
	Charts    []ChartOutcome `json:"charts"`
	Composite string         `json:"composite,omitempty"`
	Badge     *BadgeSummary  `json:"badge,omitempty"`
	BadgePath string         `json:"badge_path,omitempty"`
}

// OutcomeFromPlan converts a plan into a report row.
func OutcomeFromPlan(plan ChartPlan) ChartOutcome {
	return ChartOutcome{
		Name:     plan.Spec.Name,
		Points:   len(plan.Points),
		Smoothed: plan.Curve != nil,
		Start:    plan.XRange.Start,
		End:      plan.XRange.End,
		Skipped:  plan.Skipped,
		Reason:   plan.SkipReason,
	}
}

// Package outwriter prints run reports, chart plans and store status.
package outwriter

import (
	"os"

	"github.com/fatih/color"
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct {
	cfg *contract.Config
}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter(cfg *contract.Config) *OutWriter {
	return &OutWriter{cfg: cfg}
}

// WriteReport prints the outcome of a render pass.
func (ow *OutWriter) WriteReport(report schema.RunReport) error {
	return PrintRunReport(report, ow.cfg)
}

// WritePlans prints chart plans computed without rendering.
func (ow *OutWriter) WritePlans(plans []schema.ChartPlan) error {
	return PrintPlans(plans, ow.cfg)
}

// WriteBadge prints a badge summary.
func (ow *OutWriter) WriteBadge(summary schema.BadgeSummary) error {
	return PrintBadge(summary, ow.cfg)
}

// WriteStatus prints the traffic store status.
func (ow *OutWriter) WriteStatus(status schema.SeriesStatus) error {
	return PrintStatus(status, ow.cfg)
}

// Status colors for table output.
var (
	renderedColor = color.New(color.FgGreen)
	skippedColor  = color.New(color.FgYellow)
	failedColor   = color.New(color.FgRed, color.Bold)
)

// colorsEnabled reports whether table cells may be colored.
func colorsEnabled(cfg *contract.Config) bool {
	return cfg.UseColors && cfg.OutputFile == "" && term.IsTerminal(int(os.Stdout.Fd()))
}

// outcomeLabel names the state of a chart outcome.
func outcomeLabel(o schema.ChartOutcome, colored bool) string {
	label, c := "rendered", renderedColor
	switch {
	case o.Error != "":
		label, c = "failed", failedColor
	case o.Skipped:
		label, c = "skipped", skippedColor
	case o.Path == "":
		label, c = "planned", renderedColor
	}
	if colored {
		return c.Sprint(label)
	}
	return label
}

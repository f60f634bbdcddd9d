package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// DateFormat is the date layout used in tables and CSV.
const DateFormat = "2006-01-02"

var outcomeHeader = []string{"Chart", "Status", "Points", "Curve", "Start", "End", "File/Reason"}

// PrintRunReport writes a RunReport in the configured report mode.
func PrintRunReport(report schema.RunReport, cfg *contract.Config) error {
	switch cfg.Report {
	case schema.JSONReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSV(w, outcomeHeader, outcomeRows(report.Charts, false))
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, colorsEnabled(cfg))
		}, "Wrote table")
	}
}

// PrintPlans writes chart plans without their dense curves.
func PrintPlans(plans []schema.ChartPlan, cfg *contract.Config) error {
	outcomes := make([]schema.ChartOutcome, len(plans))
	for i, p := range plans {
		outcomes[i] = schema.OutcomeFromPlan(p)
	}

	switch cfg.Report {
	case schema.JSONReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, outcomes)
		}, "Wrote JSON")
	case schema.CSVReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSV(w, outcomeHeader, outcomeRows(outcomes, false))
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOutcomeTable(w, outcomes, colorsEnabled(cfg))
		}, "Wrote table")
	}
}

// PrintBadge writes a badge summary.
func PrintBadge(summary schema.BadgeSummary, cfg *contract.Config) error {
	switch cfg.Report {
	case schema.JSONReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSV(w, []string{"total_clones", "total_downloads"}, [][]string{{
				strconv.FormatInt(summary.TotalClones, 10),
				strconv.FormatInt(summary.TotalDownloads, 10),
			}})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Total Clones", "Total Downloads"})
			if err := table.Bulk([][]string{{
				strconv.FormatInt(summary.TotalClones, 10),
				strconv.FormatInt(summary.TotalDownloads, 10),
			}}); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}

func writeReportTable(w io.Writer, report schema.RunReport, colored bool) error {
	if _, err := fmt.Fprintf(w, "🔎 Repo: %s (Weekday: %s)\n", report.Repo, report.Weekday); err != nil {
		return err
	}
	if err := writeOutcomeTable(w, report.Charts, colored); err != nil {
		return err
	}
	if report.Composite != "" {
		if _, err := fmt.Fprintf(w, "🧩 Composite: %s\n", report.Composite); err != nil {
			return err
		}
	}
	if report.Badge != nil {
		if _, err := fmt.Fprintf(w, "🏷️  Badge: %d clones, %d downloads (%s)\n",
			report.Badge.TotalClones, report.Badge.TotalDownloads, report.BadgePath); err != nil {
			return err
		}
	}
	return nil
}

func writeOutcomeTable(w io.Writer, outcomes []schema.ChartOutcome, colored bool) error {
	table := tablewriter.NewWriter(w)
	table.Header(outcomeHeader)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(outcomeRows(outcomes, colored)); err != nil {
		return err
	}
	return table.Render()
}

// outcomeRows flattens outcomes for table and CSV output.
func outcomeRows(outcomes []schema.ChartOutcome, colored bool) [][]string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		detail := o.Path
		switch {
		case o.Error != "":
			detail = o.Error
		case o.Skipped:
			detail = o.Reason
		}
		rows = append(rows, []string{
			o.Name,
			outcomeLabel(o, colored),
			strconv.Itoa(o.Points),
			strconv.FormatBool(o.Smoothed),
			formatDate(o.Start),
			formatDate(o.End),
			detail,
		})
	}
	return rows
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateFormat)
}

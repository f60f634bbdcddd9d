package outwriter

import (
	"io"
	"strconv"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintStatus writes the traffic store status.
func PrintStatus(status schema.SeriesStatus, cfg *contract.Config) error {
	switch cfg.Report {
	case schema.JSONReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.CSVReport:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSV(w, []string{"backend", "connected", "total_rows", "first_date", "last_date"}, [][]string{statusRow(status)})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Backend", "Connected", "Rows", "First Day", "Last Day"})
			if err := table.Bulk([][]string{statusRow(status)}); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}

func statusRow(status schema.SeriesStatus) []string {
	return []string{
		status.Backend,
		strconv.FormatBool(status.Connected),
		strconv.Itoa(status.TotalRows),
		formatDate(status.FirstDate),
		formatDate(status.LastDate),
	}
}

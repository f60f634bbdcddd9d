package core

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
)

// Summarize computes the badge numbers. Clones are summed over every
// record; downloads are the cumulative value of the latest record.
func Summarize(series schema.TrafficSeries) schema.BadgeSummary {
	var summary schema.BadgeSummary
	for _, r := range series {
		summary.TotalClones += r.Clones
	}
	if last, ok := series.Last(); ok {
		summary.TotalDownloads = last.TotalDownloads
	}
	return summary
}

// WriteBadge writes the summary as JSON, creating the parent directory.
func WriteBadge(path string, summary schema.BadgeSummary) error {
	if err := contract.EnsureParentDir(path); err != nil {
		return fmt.Errorf("failed to create badge directory: %w", err)
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Package parquet exports traffic data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/schema"
	"github.com/parquet-go/parquet-go"
)

// TrafficDay is one row of the daily traffic table.
type TrafficDay struct {
	// Date is the calendar day at UTC midnight
	Date time.Time `parquet:"date,snappy"`

	Clones         int64 `parquet:"clones,snappy"`
	Views          int64 `parquet:"views,snappy"`
	TotalDownloads int64 `parquet:"total_downloads,snappy"`
	TotalStars     int64 `parquet:"total_stars,snappy"`
}

// ChartPoint is one plotted point of a chart plan.
type ChartPoint struct {
	Chart string    `parquet:"chart,dict,snappy"`
	Date  time.Time `parquet:"date,snappy"`
	Value float64   `parquet:"value,snappy"`
}

// ConvertSeries maps a traffic series to Parquet rows.
func ConvertSeries(series schema.TrafficSeries) []TrafficDay {
	out := make([]TrafficDay, len(series))
	for i, r := range series {
		out[i] = TrafficDay{
			Date:           r.Date,
			Clones:         r.Clones,
			Views:          r.Views,
			TotalDownloads: r.TotalDownloads,
			TotalStars:     r.TotalStars,
		}
	}
	return out
}

// ConvertPlans flattens the sampled points of every non-skipped plan.
func ConvertPlans(plans []schema.ChartPlan) []ChartPoint {
	var out []ChartPoint
	for _, p := range plans {
		for _, pt := range p.Points {
			out = append(out, ChartPoint{Chart: p.Spec.Name, Date: pt.X, Value: pt.Y})
		}
	}
	return out
}

// WriteSeriesParquet writes the traffic series to a Parquet file.
func WriteSeriesParquet(series schema.TrafficSeries, outputPath string) error {
	return writeRows(ConvertSeries(series), outputPath)
}

// WritePlanPointsParquet writes the sampled points of chart plans to a Parquet file.
func WritePlanPointsParquet(plans []schema.ChartPlan, outputPath string) error {
	return writeRows(ConvertPlans(plans), outputPath)
}

// writeRows writes rows with a schema inferred from the struct tags of T.
func writeRows[T any](rows []T, outputPath string) error {
	if err := contract.EnsureParentDir(outputPath); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	// Close flushes the footer.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return file.Close()
}

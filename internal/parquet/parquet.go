// Package parquet exports geoprocessing metrics to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/oceanplan/sizecard/schema"
	"github.com/parquet-go/parquet-go"
)

// MetricRecord is the flat Parquet row of a single metric.
type MetricRecord struct {
	// MetricID is the metric the value measures
	MetricID string `parquet:"metric_id,snappy"`

	// SketchID is the subject of the metric (nullable for aggregate rows)
	SketchID *string `parquet:"sketch_id,optional,snappy"`

	// ClassID is the boundary class (nullable)
	ClassID *string `parquet:"class_id,optional,snappy"`

	GroupID     *string `parquet:"group_id,optional,snappy"`
	GeographyID *string `parquet:"geography_id,optional,snappy"`

	// Value is the raw measurement, square meters for area metrics
	Value float64 `parquet:"value,snappy"`

	// Extra holds the JSON-encoded extra properties (nullable)
	Extra *string `parquet:"extra,optional,snappy"`
}

// ConvertMetrics converts metrics to Parquet records. Empty strings become nulls.
func ConvertMetrics(metrics []schema.Metric) ([]MetricRecord, error) {
	result := make([]MetricRecord, len(metrics))
	for i, m := range metrics {
		result[i] = MetricRecord{
			MetricID:    m.MetricID,
			SketchID:    optional(m.SketchID),
			ClassID:     optional(m.ClassID),
			GroupID:     optional(m.GroupID),
			GeographyID: optional(m.GeographyID),
			Value:       m.Value,
		}
		if len(m.Extra) > 0 {
			raw, err := json.Marshal(m.Extra)
			if err != nil {
				return nil, fmt.Errorf("failed to encode extra of metric %d: %w", i, err)
			}
			extra := string(raw)
			result[i].Extra = &extra
		}
	}
	return result, nil
}

// WriteMetrics writes metrics as a Parquet file to w.
func WriteMetrics(w io.Writer, metrics []schema.Metric) error {
	data, err := ConvertMetrics(metrics)
	if err != nil {
		return err
	}

	// The schema is derived from the MetricRecord struct tags
	writer := parquet.NewGenericWriter[MetricRecord](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteMetricsParquet writes metrics to a Parquet file at outputPath.
func WriteMetricsParquet(metrics []schema.Metric, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteMetrics(file, metrics)
}

// ReadMetrics reads every record of a Parquet metrics file.
func ReadMetrics(r io.ReaderAt, size int64) ([]MetricRecord, error) {
	file, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	reader := parquet.NewGenericReader[MetricRecord](file)
	defer func() { _ = reader.Close() }()

	rows := make([]MetricRecord, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read parquet rows: %w", err)
	}
	return rows[:n], nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/internal/parquet"
	"github.com/oceanplan/sizecard/schema"
)

// DownloadFileName returns the default file name of a download, e.g. "size.csv".
func DownloadFileName(base string, format schema.OutputMode) string {
	return base + "." + string(format)
}

// WriteDownloadResults exports metrics unchanged in the configured download format.
func WriteDownloadResults(metrics []schema.Metric, cfg *contract.Config) error {
	switch cfg.DownloadFormat {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONMetrics(w, metrics)
		}, "Wrote JSON")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteMetrics(w, metrics)
		}, "Wrote Parquet")
	case schema.CSVOut, "":
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetrics(w, metrics)
		}, "Wrote CSV")
	default:
		return fmt.Errorf("unsupported download format: %s", cfg.DownloadFormat)
	}
}

// writeJSONMetrics writes metrics as a JSON array; nil becomes [].
func writeJSONMetrics(w io.Writer, metrics []schema.Metric) error {
	if metrics == nil {
		metrics = []schema.Metric{}
	}
	return writeJSON(w, metrics)
}

// writeCSVMetrics writes one record per metric with the extra properties as a JSON column.
func writeCSVMetrics(w io.Writer, metrics []schema.Metric) error {
	header := []string{"metricId", "value", "classId", "groupId", "geographyId", "sketchId", "extra"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range metrics {
			extra := ""
			if len(m.Extra) > 0 {
				raw, err := json.Marshal(m.Extra)
				if err != nil {
					return fmt.Errorf("failed to encode extra: %w", err)
				}
				extra = string(raw)
			}
			rec := []string{
				m.MetricID,
				strconv.FormatFloat(m.Value, 'f', -1, 64),
				m.ClassID,
				m.GroupID,
				m.GeographyID,
				m.SketchID,
				extra,
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

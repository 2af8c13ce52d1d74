package agg

import (
	"errors"

	"github.com/oceanplan/sizecard/schema"
)

// SingleSketch selects the records of one sketch, adds the derived percent records
// and orders them for a class table.
func SingleSketch(metrics []schema.Metric, sketchID string, precalc []schema.Metric, mg schema.MetricGroup, priority []string) schema.SketchMetrics {
	single := FilterBySketch(metrics, sketchID)
	derived, missing := derivePercent(single, precalc, mg)

	merged := make([]schema.Metric, 0, len(single)+len(derived))
	merged = append(merged, single...)
	merged = append(merged, derived...)

	return schema.SketchMetrics{
		SketchID: sketchID,
		Metrics:  SortMetricsDisplayOrder(merged, mg.ClassIDs(), priority),
		Missing:  missing,
	}
}

// Network selects the records of the given child sketches, adds the derived percent
// records and pivots them into a sketch -> class -> metric lookup.
// A child without any record in metrics gets no row.
func Network(metrics []schema.Metric, sketchIDs []string, precalc []schema.Metric, mg schema.MetricGroup) schema.NetworkMetrics {
	children := FilterBySketchSet(metrics, sketchIDs)
	derived, missing := derivePercent(children, precalc, mg)

	merged := make([]schema.Metric, 0, len(children)+len(derived))
	merged = append(merged, children...)
	merged = append(merged, derived...)

	return schema.NetworkMetrics{
		SketchIDs: SketchOrder(merged),
		Nested:    NestMetrics(merged),
		Missing:   missing,
	}
}

// derivePercent runs ToPercentMetric with the group's percent id and splits off
// the classes that had no baseline.
func derivePercent(metrics, precalc []schema.Metric, mg schema.MetricGroup) ([]schema.Metric, []string) {
	derived, err := ToPercentMetric(metrics, precalc, PercentOptions{
		MetricIDOverride: schema.PercMetricID(mg.MetricID),
	})
	var missingErr *MissingBaselineError
	if errors.As(err, &missingErr) {
		return derived, missingErr.ClassIDs
	}
	return derived, nil
}

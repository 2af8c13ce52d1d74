package agg

import "github.com/oceanplan/sizecard/schema"

// NestMetrics groups records by sketchId, then classId, then metricId.
// Each leaf keeps the records in input order.
func NestMetrics(metrics []schema.Metric) schema.NestedMetrics {
	nested := make(schema.NestedMetrics)
	for _, m := range metrics {
		byClass, ok := nested[m.SketchID]
		if !ok {
			byClass = make(map[string]map[string][]schema.Metric)
			nested[m.SketchID] = byClass
		}
		byMetric, ok := byClass[m.ClassID]
		if !ok {
			byMetric = make(map[string][]schema.Metric)
			byClass[m.ClassID] = byMetric
		}
		byMetric[m.MetricID] = append(byMetric[m.MetricID], m)
	}
	return nested
}

// SketchOrder returns the distinct sketch ids of metrics in first-appearance order.
func SketchOrder(metrics []schema.Metric) []string {
	var order []string
	seen := make(map[string]struct{})
	for _, m := range metrics {
		if _, ok := seen[m.SketchID]; ok {
			continue
		}
		seen[m.SketchID] = struct{}{}
		order = append(order, m.SketchID)
	}
	return order
}

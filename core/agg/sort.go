package agg

import (
	"slices"

	"github.com/oceanplan/sizecard/schema"
)

// SortMetricsDisplayOrder orders records by class. Classes named in priority come
// first in that order, the remaining classes follow classOrder, and classes known to
// neither keep their input order at the end. The sort is stable, so records of the
// same class keep their relative order.
func SortMetricsDisplayOrder(metrics []schema.Metric, classOrder, priority []string) []schema.Metric {
	rank := classRanks(classOrder, priority)
	unknown := len(rank)

	sorted := slices.Clone(metrics)
	slices.SortStableFunc(sorted, func(a, b schema.Metric) int {
		ra, ok := rank[a.ClassID]
		if !ok {
			ra = unknown
		}
		rb, ok := rank[b.ClassID]
		if !ok {
			rb = unknown
		}
		return ra - rb
	})
	return sorted
}

// classRanks assigns each known class its display position.
func classRanks(classOrder, priority []string) map[string]int {
	rank := make(map[string]int, len(classOrder)+len(priority))
	next := 0
	for _, id := range priority {
		if _, ok := rank[id]; ok {
			continue
		}
		rank[id] = next
		next++
	}
	for _, id := range classOrder {
		if _, ok := rank[id]; ok {
			continue
		}
		rank[id] = next
		next++
	}
	return rank
}

// ClassDisplayOrder returns the distinct class ids of metrics in first-appearance order.
func ClassDisplayOrder(metrics []schema.Metric) []string {
	var order []string
	seen := make(map[string]struct{})
	for _, m := range metrics {
		if _, ok := seen[m.ClassID]; ok {
			continue
		}
		seen[m.ClassID] = struct{}{}
		order = append(order, m.ClassID)
	}
	return order
}

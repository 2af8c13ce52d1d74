// Package agg has filtering, percent derivation, ordering and pivot logic for metrics.
// Every function here is pure: inputs are never mutated and results are rebuilt per call.
package agg

import "github.com/oceanplan/sizecard/schema"

// FilterBySketch keeps the records that belong to the given sketch.
func FilterBySketch(metrics []schema.Metric, sketchID string) []schema.Metric {
	out := make([]schema.Metric, 0, len(metrics))
	for _, m := range metrics {
		if m.SketchID == sketchID {
			out = append(out, m)
		}
	}
	return out
}

// FilterBySketchSet keeps the records whose sketch id is set and is one of sketchIDs.
// Records pointing at unknown sketches are dropped without error.
func FilterBySketchSet(metrics []schema.Metric, sketchIDs []string) []schema.Metric {
	known := make(map[string]struct{}, len(sketchIDs))
	for _, id := range sketchIDs {
		known[id] = struct{}{}
	}

	out := make([]schema.Metric, 0, len(metrics))
	for _, m := range metrics {
		if m.SketchID == "" {
			continue
		}
		if _, ok := known[m.SketchID]; ok {
			out = append(out, m)
		}
	}
	return out
}

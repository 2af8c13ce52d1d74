package agg

import (
	"fmt"
	"maps"
	"strings"

	"github.com/oceanplan/sizecard/schema"
)

// PercentOptions controls how derived percent records are labelled.
type PercentOptions struct {
	MetricIDOverride string // Replaces the metric id of derived records when set
}

// MissingBaselineError lists classes that had no precalculated denominator.
type MissingBaselineError struct {
	ClassIDs []string
}

func (e *MissingBaselineError) Error() string {
	return fmt.Sprintf("missing baseline for class %s", strings.Join(e.ClassIDs, ", "))
}

// ToPercentMetric derives value/baseline records from numerators.
// One record is produced per distinct (sketchId, classId); the first numerator wins.
// Denominators are matched on classId, again first match wins. A zero denominator
// yields 0. Classes without a denominator are left out of the result and reported
// through a *MissingBaselineError, while the records of other classes are still returned.
func ToPercentMetric(numerators, denominators []schema.Metric, opts PercentOptions) ([]schema.Metric, error) {
	baseline := make(map[string]float64, len(denominators))
	for _, d := range denominators {
		if _, ok := baseline[d.ClassID]; !ok {
			baseline[d.ClassID] = d.Value
		}
	}

	type sketchClass struct{ sketchID, classID string }
	seen := make(map[sketchClass]struct{}, len(numerators))
	seenMissing := make(map[string]struct{})
	var missing []string

	derived := make([]schema.Metric, 0, len(numerators))
	for _, m := range numerators {
		key := sketchClass{m.SketchID, m.ClassID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		total, ok := baseline[m.ClassID]
		if !ok {
			if _, dup := seenMissing[m.ClassID]; !dup {
				seenMissing[m.ClassID] = struct{}{}
				missing = append(missing, m.ClassID)
			}
			continue
		}

		perc := m
		perc.Extra = maps.Clone(m.Extra)
		perc.Value = ratio(m.Value, total)
		if opts.MetricIDOverride != "" {
			perc.MetricID = opts.MetricIDOverride
		}
		derived = append(derived, perc)
	}

	if len(missing) > 0 {
		return derived, &MissingBaselineError{ClassIDs: missing}
	}
	return derived, nil
}

// ratio divides value by total, treating an empty total as zero coverage.
func ratio(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total
}

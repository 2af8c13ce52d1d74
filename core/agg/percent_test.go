package agg

import (
	"errors"
	"testing"

	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPercentMetric(t *testing.T) {
	numerators := []schema.Metric{
		area("s1", "eez", 250_000_000),
		area("s1", "offshore", 100_000_000),
	}

	got, err := ToPercentMetric(numerators, testPrecalc, PercentOptions{MetricIDOverride: testPercID})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, testPercID, got[0].MetricID)
	assert.InDelta(t, 0.25, got[0].Value, 1e-12)
	assert.InDelta(t, 0.25, got[1].Value, 1e-12)
	assert.Equal(t, 250_000_000.0, numerators[0].Value, "numerators are not modified")
}

func TestToPercentMetricKeepsMetricIDWithoutOverride(t *testing.T) {
	got, err := ToPercentMetric([]schema.Metric{area("s1", "eez", 1)}, testPrecalc, PercentOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, testMetricID, got[0].MetricID)
}

func TestToPercentMetricIsPure(t *testing.T) {
	numerators := []schema.Metric{area("s1", "eez", 300_000_000)}
	opts := PercentOptions{MetricIDOverride: testPercID}

	first, err := ToPercentMetric(numerators, testPrecalc, opts)
	require.NoError(t, err)

	// derive something unrelated in between
	_, _ = ToPercentMetric([]schema.Metric{area("s9", "offshore", 5)}, testPrecalc, opts)

	second, err := ToPercentMetric(numerators, testPrecalc, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, 0.3, second[0].Value, 1e-12)
}

func TestToPercentMetricFirstMatchWins(t *testing.T) {
	numerators := []schema.Metric{
		area("s1", "eez", 100),
		area("s1", "eez", 900),
	}
	denominators := []schema.Metric{
		{MetricID: "area", ClassID: "eez", Value: 1000},
		{MetricID: "area", ClassID: "eez", Value: 1},
	}

	got, err := ToPercentMetric(numerators, denominators, PercentOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1, "one derived record per sketch and class")
	assert.InDelta(t, 0.1, got[0].Value, 1e-12)
}

func TestToPercentMetricZeroBaseline(t *testing.T) {
	got, err := ToPercentMetric(
		[]schema.Metric{area("s1", "eez", 100)},
		[]schema.Metric{{MetricID: "area", ClassID: "eez", Value: 0}},
		PercentOptions{},
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Value)
}

func TestToPercentMetricMissingBaseline(t *testing.T) {
	numerators := []schema.Metric{
		area("s1", "reef", 1),
		area("s1", "eez", 500),
		area("s2", "reef", 2),
		area("s1", "kelp", 3),
	}

	got, err := ToPercentMetric(numerators, testPrecalc, PercentOptions{})
	require.Error(t, err)

	var missing *MissingBaselineError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"reef", "kelp"}, missing.ClassIDs)
	assert.Equal(t, "missing baseline for class reef, kelp", err.Error())

	require.Len(t, got, 1, "classes with a baseline are still derived")
	assert.Equal(t, "eez", got[0].ClassID)
}

func TestToPercentMetricCopiesExtra(t *testing.T) {
	src := area("s1", "eez", 1)
	src.Extra = map[string]any{"note": "a"}

	got, err := ToPercentMetric([]schema.Metric{src}, testPrecalc, PercentOptions{})
	require.NoError(t, err)
	got[0].Extra["note"] = "b"
	assert.Equal(t, "a", src.Extra["note"])
}

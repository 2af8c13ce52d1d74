package agg

import (
	"testing"

	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/assert"
)

func classesOf(metrics []schema.Metric) []string {
	out := make([]string, len(metrics))
	for i, m := range metrics {
		out[i] = m.ClassID
	}
	return out
}

func TestSortMetricsDisplayOrder(t *testing.T) {
	groupOrder := []string{"contiguous", "eez", "nearshore", "offshore"}

	tests := []struct {
		name     string
		input    []string
		priority []string
		want     []string
	}{
		{
			name:     "group order without priority",
			input:    []string{"offshore", "eez", "nearshore", "contiguous"},
			priority: nil,
			want:     []string{"contiguous", "eez", "nearshore", "offshore"},
		},
		{
			name:     "priority first then group order",
			input:    []string{"nearshore", "contiguous", "offshore", "eez"},
			priority: []string{"eez", "offshore", "contiguous"},
			want:     []string{"eez", "offshore", "contiguous", "nearshore"},
		},
		{
			name:     "priority naming unknown classes",
			input:    []string{"offshore", "eez"},
			priority: []string{"reef", "offshore"},
			want:     []string{"offshore", "eez"},
		},
		{
			name:     "unknown classes keep input order at the end",
			input:    []string{"zeta", "eez", "alpha", "contiguous"},
			priority: []string{"eez"},
			want:     []string{"eez", "contiguous", "zeta", "alpha"},
		},
		{
			name:     "duplicate priority entries",
			input:    []string{"contiguous", "eez"},
			priority: []string{"eez", "eez"},
			want:     []string{"eez", "contiguous"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var metrics []schema.Metric
			for _, c := range tt.input {
				metrics = append(metrics, area("s1", c, 1))
			}
			got := SortMetricsDisplayOrder(metrics, groupOrder, tt.priority)
			assert.Equal(t, tt.want, classesOf(got))
			assert.Equal(t, tt.input, classesOf(metrics), "input is not reordered")
		})
	}
}

func TestSortMetricsDisplayOrderIsStable(t *testing.T) {
	metrics := []schema.Metric{
		area("s1", "offshore", 1),
		area("s1", "eez", 2),
		{MetricID: testPercID, SketchID: "s1", ClassID: "offshore", Value: 3},
		{MetricID: testPercID, SketchID: "s1", ClassID: "eez", Value: 4},
	}

	got := SortMetricsDisplayOrder(metrics, []string{"eez", "offshore"}, nil)

	values := make([]float64, len(got))
	for i, m := range got {
		values[i] = m.Value
	}
	assert.Equal(t, []float64{2, 4, 1, 3}, values)
}

func TestClassDisplayOrder(t *testing.T) {
	metrics := []schema.Metric{area("s1", "eez", 1), area("s1", "eez", 2), area("s1", "offshore", 3)}
	assert.Equal(t, []string{"eez", "offshore"}, ClassDisplayOrder(metrics))
	assert.Empty(t, ClassDisplayOrder(nil))
}

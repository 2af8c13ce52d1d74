package table

import (
	"slices"

	"github.com/oceanplan/sizecard/core/agg"
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// Column keys of the class table.
const (
	ClassKey  = "class"
	ValueKey  = "value"
	ChartKey  = "chart"
	LayerKey  = "layer"
	SketchKey = "sketch"
)

// ClassColumns returns the column layout of the single sketch table.
func ClassColumns(mg schema.MetricGroup, t contract.Translator) []schema.Column {
	return []schema.Column{
		{
			Key:   ClassKey,
			Label: translate(t, "Boundary"),
			Kind:  schema.ClassColumn,
			Width: 25,
		},
		{
			Key:        ValueKey,
			Label:      translate(t, "Found Within Plan"),
			Kind:       schema.MetricValueColumn,
			Width:      20,
			MetricID:   mg.MetricID,
			ValueLabel: translate(t, "km²"),
			Format:     FormatArea,
		},
		{
			Key:      ChartKey,
			Label:    " ",
			Kind:     schema.MetricChartColumn,
			Width:    40,
			MetricID: schema.PercMetricID(mg.MetricID),
			Format:   FormatPercent,
			Chart: &schema.ChartOptions{
				ShowTitle:           true,
				ShowTargetLabel:     true,
				TargetLabelPosition: "bottom",
				TargetLabelStyle:    "tight",
				BarHeight:           11,
			},
		},
		{
			Key:   LayerKey,
			Label: translate(t, "Map"),
			Kind:  schema.LayerToggleColumn,
			Width: 15,
		},
	}
}

// BuildClassTable builds one row per class of the sketch, in the order of sm.Metrics.
// targets maps class ids to objective targets expressed as ratios.
// Classes without a baseline get the gap marker in the chart column and are listed
// in Gaps. Cells without a record get the marker too but are listed in Absent.
func BuildClassTable(sm schema.SketchMetrics, mg schema.MetricGroup, targets map[string]float64, t contract.Translator, f Formatter) schema.TableModel {
	percID := schema.PercMetricID(mg.MetricID)
	kmLabel := translate(t, "km²")

	model := schema.TableModel{Columns: ClassColumns(mg, t)}

	for idx, classID := range agg.ClassDisplayOrder(sm.Metrics) {
		row := schema.Row{
			Key:    classID,
			Cells:  map[string]string{ClassKey: classLabel(mg, classID, t)},
			Values: map[string]float64{},
		}

		if m, ok := firstMetric(sm.Metrics, classID, mg.MetricID); ok {
			row.Cells[ValueKey] = f.FormatArea(m.Value) + " " + kmLabel
			row.Values[ValueKey] = m.Value
		} else {
			row.Cells[ValueKey] = schema.GapMarker
			model.Absent = appendGap(model.Absent, classID)
		}

		if m, ok := firstMetric(sm.Metrics, classID, percID); ok {
			row.Cells[ChartKey] = f.ValueFormatter(m.Value, FormatPercent)
			row.Values[ChartKey] = m.Value
		} else {
			row.Cells[ChartKey] = schema.GapMarker
			markMissing(&model, classID, sm.Missing)
		}

		if target, ok := targets[classID]; ok {
			row.Target = target
			row.TargetLabel = targetLabel(idx, target, t, f)
		}

		if c, ok := mg.Class(classID); ok && c.LayerID != "" {
			row.Cells[LayerKey] = c.LayerID
		} else {
			row.Cells[LayerKey] = mg.LayerID
		}

		model.Rows = append(model.Rows, row)
	}

	for _, classID := range sm.Missing {
		model.Gaps = appendGap(model.Gaps, classID)
	}
	return model
}

// targetLabel reads "NN% Target" on the first row and "NN%" below it.
func targetLabel(rowIdx int, target float64, t contract.Translator, f Formatter) string {
	label := f.ValueFormatter(target, FormatPercent0Dig)
	if rowIdx == 0 {
		label += " " + translate(t, "Target")
	}
	return label
}

func classLabel(mg schema.MetricGroup, classID string, t contract.Translator) string {
	if c, ok := mg.Class(classID); ok && c.Display != "" {
		return translate(t, c.Display)
	}
	return classID
}

func firstMetric(metrics []schema.Metric, classID, metricID string) (schema.Metric, bool) {
	for _, m := range metrics {
		if m.ClassID == classID && m.MetricID == metricID {
			return m, true
		}
	}
	return schema.Metric{}, false
}

// markMissing records a missing percent cell. It is a baseline gap when the class
// has no baseline, otherwise the record itself was absent.
func markMissing(model *schema.TableModel, classID string, noBaseline []string) {
	if slices.Contains(noBaseline, classID) {
		model.Gaps = appendGap(model.Gaps, classID)
		return
	}
	model.Absent = appendGap(model.Absent, classID)
}

func appendGap(gaps []string, classID string) []string {
	if slices.Contains(gaps, classID) {
		return gaps
	}
	return append(gaps, classID)
}

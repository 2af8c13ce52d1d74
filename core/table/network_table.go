package table

import (
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// AreaKey and PercKey build the column keys of the per class column pair.
func AreaKey(classID string) string { return classID + ".area" }

// PercKey is the column key of the percent column for a class.
func PercKey(classID string) string { return classID + ".perc" }

// NetworkColumns returns the sketch name column followed by an area and percent
// column pair per class of the group, grouped under the class label.
func NetworkColumns(mg schema.MetricGroup, t contract.Translator) []schema.Column {
	percID := schema.PercMetricID(mg.MetricID)
	columns := []schema.Column{{Key: SketchKey, Label: " ", Kind: schema.TextColumn}}
	for _, c := range mg.Classes {
		group := translate(t, c.Display)
		columns = append(columns,
			schema.Column{
				Key:        AreaKey(c.ClassID),
				Label:      translate(t, "Area"),
				Group:      group,
				Kind:       schema.MetricValueColumn,
				MetricID:   mg.MetricID,
				ValueLabel: translate(t, "km²"),
				Format:     FormatArea,
			},
			schema.Column{
				Key:      PercKey(c.ClassID),
				Label:    translate(t, "% Area"),
				Group:    group,
				Kind:     schema.MetricValueColumn,
				MetricID: percID,
				Format:   FormatEdgePercent,
			},
		)
	}
	return columns
}

// BuildNetworkTable builds one row per sketch present in nm, in nm.SketchIDs order.
// Cells with no record, or no percent because the baseline was missing, hold the gap marker.
// Only classes without a baseline go to Gaps; classes a sketch has no record for go to Absent.
func BuildNetworkTable(nm schema.NetworkMetrics, mg schema.MetricGroup, children []schema.SketchProperties, t contract.Translator, f Formatter) schema.TableModel {
	percID := schema.PercMetricID(mg.MetricID)
	kmLabel := translate(t, "km²")
	byID := schema.KeySketches(children)

	model := schema.TableModel{Columns: NetworkColumns(mg, t)}

	for _, sketchID := range nm.SketchIDs {
		name := sketchID
		if sp, ok := byID[sketchID]; ok && sp.Name != "" {
			name = sp.Name
		}
		row := schema.Row{
			Key:    sketchID,
			Cells:  map[string]string{SketchKey: name},
			Values: map[string]float64{},
		}

		for _, c := range mg.Classes {
			if m, ok := nm.Nested.First(sketchID, c.ClassID, mg.MetricID); ok {
				row.Cells[AreaKey(c.ClassID)] = f.FormatArea(m.Value) + " " + kmLabel
				row.Values[AreaKey(c.ClassID)] = m.Value
			} else {
				row.Cells[AreaKey(c.ClassID)] = schema.GapMarker
				model.Absent = appendGap(model.Absent, c.ClassID)
			}

			if m, ok := nm.Nested.First(sketchID, c.ClassID, percID); ok {
				row.Cells[PercKey(c.ClassID)] = f.PercentWithEdge(m.Value)
				row.Values[PercKey(c.ClassID)] = m.Value
			} else {
				row.Cells[PercKey(c.ClassID)] = schema.GapMarker
				markMissing(&model, c.ClassID, nm.Missing)
			}
		}

		model.Rows = append(model.Rows, row)
	}

	for _, classID := range nm.Missing {
		model.Gaps = appendGap(model.Gaps, classID)
	}
	return model
}

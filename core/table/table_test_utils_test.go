package table

import "github.com/oceanplan/sizecard/schema"

// mapTranslator is a fixed translation table for tests.
type mapTranslator map[string]string

func (m mapTranslator) T(key string) string { return m[key] }

var testGroup = schema.MetricGroup{
	MetricID: "boundaryAreaOverlap",
	LayerID:  "group-layer",
	Classes: []schema.DataClass{
		{ClassID: "eez", Display: "EEZ", LayerID: "eez-layer"},
		{ClassID: "offshore", Display: "Offshore"},
		{ClassID: "contiguous", Display: "Contiguous Zone", LayerID: "cz-layer"},
	},
}

var testPrecalc = []schema.Metric{
	{MetricID: "area", ClassID: "eez", Value: 1_000_000_000},
	{MetricID: "area", ClassID: "offshore", Value: 400_000_000},
	{MetricID: "area", ClassID: "contiguous", Value: 200_000_000},
}

func area(sketchID, classID string, value float64) schema.Metric {
	return schema.Metric{MetricID: testGroup.MetricID, SketchID: sketchID, ClassID: classID, Value: value}
}

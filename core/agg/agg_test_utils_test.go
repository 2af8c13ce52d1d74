package agg

import "github.com/oceanplan/sizecard/schema"

const (
	testMetricID = "boundaryAreaOverlap"
	testPercID   = "boundaryAreaOverlapPerc"
)

// testGroup is the boundary metric group used across the package tests.
var testGroup = schema.MetricGroup{
	MetricID: testMetricID,
	Classes: []schema.DataClass{
		{ClassID: "contiguous", Display: "Contiguous Zone"},
		{ClassID: "eez", Display: "EEZ"},
		{ClassID: "nearshore", Display: "Nearshore"},
		{ClassID: "offshore", Display: "Offshore"},
	},
}

// testPrecalc holds the total area of each boundary in square meters.
var testPrecalc = []schema.Metric{
	{MetricID: "area", ClassID: "eez", Value: 1_000_000_000},
	{MetricID: "area", ClassID: "offshore", Value: 400_000_000},
	{MetricID: "area", ClassID: "contiguous", Value: 200_000_000},
	{MetricID: "area", ClassID: "nearshore", Value: 100_000_000},
}

func area(sketchID, classID string, value float64) schema.Metric {
	return schema.Metric{MetricID: testMetricID, SketchID: sketchID, ClassID: classID, Value: value}
}

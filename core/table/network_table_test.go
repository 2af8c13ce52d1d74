package table

import (
	"testing"

	"github.com/oceanplan/sizecard/core/agg"
	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChildren = []schema.SketchProperties{
	{ID: "s1", Name: "North Reef"},
	{ID: "s2", Name: "South Bank"},
	{ID: "s3", Name: "Empty"},
}

func TestNetworkColumns(t *testing.T) {
	cols := NetworkColumns(testGroup, mapTranslator{"Offshore": "Mar adentro"})
	require.Len(t, cols, 1+2*len(testGroup.Classes))
	assert.Equal(t, SketchKey, cols[0].Key)
	assert.Equal(t, AreaKey("eez"), cols[1].Key)
	assert.Equal(t, PercKey("eez"), cols[2].Key)
	assert.Equal(t, "EEZ", cols[1].Group)
	assert.Equal(t, "Mar adentro", cols[3].Group)
	assert.Equal(t, "Area", cols[3].Label)
	assert.Equal(t, "% Area", cols[4].Label)
	assert.Equal(t, FormatEdgePercent, cols[4].Format)
}

func TestBuildNetworkTable(t *testing.T) {
	metrics := []schema.Metric{
		area("", "eez", 600_000_000),
		area("s2", "eez", 400_000_000),
		area("s2", "offshore", 399_000_000),
		area("s2", "contiguous", 0),
		area("s1", "eez", 200_000_000),
		area("s1", "offshore", 200_000),
		area("s1", "contiguous", 2_000_000),
		area("stale", "eez", 5),
	}
	nm := agg.Network(metrics, []string{"s1", "s2", "s3"}, testPrecalc, testGroup)

	model := BuildNetworkTable(nm, testGroup, testChildren, nil, DefaultFormatter())

	require.Len(t, model.Rows, 2, "the child without records has no row")
	assert.Equal(t, "s2", model.Rows[0].Key, "rows follow first appearance")
	assert.Equal(t, "South Bank", model.Cell(0, SketchKey))
	assert.Equal(t, "400 km²", model.Cell(0, AreaKey("eez")))
	assert.Equal(t, "40%", model.Cell(0, PercKey("eez")))
	assert.Equal(t, "> 99%", model.Cell(0, PercKey("offshore")))
	assert.Equal(t, "0 km²", model.Cell(0, AreaKey("contiguous")))
	assert.Equal(t, "0%", model.Cell(0, PercKey("contiguous")))

	assert.Equal(t, "North Reef", model.Cell(1, SketchKey))
	assert.Equal(t, "< 0.1%", model.Cell(1, PercKey("offshore")))
	assert.Equal(t, "1%", model.Cell(1, PercKey("contiguous")))
	assert.Equal(t, 200_000_000.0, model.Rows[1].Values[AreaKey("eez")])
	assert.Empty(t, model.Gaps)
	assert.Empty(t, model.Absent)
}

func TestBuildNetworkTableGaps(t *testing.T) {
	group := testGroup
	group.Classes = append(append([]schema.DataClass(nil), testGroup.Classes...), schema.DataClass{ClassID: "reef", Display: "Reef"})

	metrics := []schema.Metric{
		area("s1", "eez", 100_000_000),
		area("s1", "reef", 1_000_000),
		area("s9", "eez", 100_000_000),
	}
	nm := agg.Network(metrics, []string{"s1", "s9"}, testPrecalc, group)

	model := BuildNetworkTable(nm, group, testChildren, nil, DefaultFormatter())

	require.Len(t, model.Rows, 2)
	assert.Equal(t, "s9", model.Cell(1, SketchKey), "unknown child names fall back to the id")
	assert.Equal(t, schema.GapMarker, model.Cell(0, AreaKey("offshore")), "absent class is a gap, not zero")
	assert.Equal(t, "1 km²", model.Cell(0, AreaKey("reef")))
	assert.Equal(t, schema.GapMarker, model.Cell(0, PercKey("reef")))
	assert.Equal(t, []string{"reef"}, model.Gaps, "only classes without a baseline are gaps")
	assert.Equal(t, []string{"offshore", "contiguous", "reef"}, model.Absent)
}

func TestBuildNetworkTableEmpty(t *testing.T) {
	nm := agg.Network(nil, []string{"s1"}, testPrecalc, testGroup)
	model := BuildNetworkTable(nm, testGroup, testChildren, nil, DefaultFormatter())
	assert.Empty(t, model.Rows)
	assert.Len(t, model.Columns, 7)
}

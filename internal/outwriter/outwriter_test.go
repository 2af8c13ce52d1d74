package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCard() *schema.SizeCardModel {
	single := schema.TableModel{
		Columns: []schema.Column{
			{Key: "class", Label: "Boundary", Kind: schema.ClassColumn, Width: 25},
			{Key: "value", Label: "Found Within Plan", Kind: schema.MetricValueColumn, Width: 20},
			{Key: "chart", Label: " ", Kind: schema.MetricChartColumn, Width: 40},
			{Key: "layer", Label: "Map", Kind: schema.LayerToggleColumn, Width: 15},
		},
		Rows: []schema.Row{
			{
				Key:         "eez",
				Cells:       map[string]string{"class": "Exclusive Economic Zone", "value": "1,500 km²", "chart": "50%", "layer": "eez-layer"},
				Values:      map[string]float64{"value": 1.5e9, "chart": 0.5},
				Target:      0.3,
				TargetLabel: "30% Target",
			},
			{
				Key:    "contiguous",
				Cells:  map[string]string{"class": "Contiguous Zone", "value": "20 km²", "chart": schema.GapMarker, "layer": "cz-layer"},
				Values: map[string]float64{"value": 2e7},
			},
		},
		Gaps: []string{"contiguous"},
	}
	network := schema.TableModel{
		Columns: []schema.Column{
			{Key: "sketch", Label: " ", Kind: schema.TextColumn},
			{Key: "eez.area", Label: "Area", Group: "EEZ", Kind: schema.MetricValueColumn},
			{Key: "eez.perc", Label: "% Area", Group: "EEZ", Kind: schema.MetricValueColumn},
		},
		Rows: []schema.Row{
			{Key: "s1", Cells: map[string]string{"sketch": "North Reef", "eez.area": "1,000 km²", "eez.perc": "33.3%"}, Values: map[string]float64{"eez.area": 1e9, "eez.perc": 0.333}},
			{Key: "s2", Cells: map[string]string{"sketch": "South Reef", "eez.area": "500 km²", "eez.perc": schema.GapMarker}, Values: map[string]float64{"eez.area": 5e8}},
			{Key: "s3", Cells: map[string]string{"sketch": "East Reef", "eez.area": schema.GapMarker, "eez.perc": schema.GapMarker}, Values: map[string]float64{}},
		},
		Gaps:   []string{"eez"},
		Absent: []string{"eez"},
	}
	return &schema.SizeCardModel{
		Title:           "Size",
		SketchID:        "collection-1",
		SketchName:      "Samoa Network",
		Introduction:    "Samoa national waters extend from the shoreline out to 200 nautical miles.",
		Single:          single,
		Network:         &network,
		NetworkTitle:    "Show by MPA",
		GapNote:         "no baseline area",
		AbsentNote:      "no result",
		LearnMoreTitle:  "Learn more",
		LearnMore:       []string{"Source: Wikipedia - Territorial Waters", "Overlap is only counted once."},
		AttributesTitle: "Attributes",
		Attributes:      []schema.UserAttribute{{ExportID: "designation", Label: "Designation", Value: "fully", ValueLabel: "Fully Protected"}},
	}
}

func TestWriteCardText(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Width: 160, UseColors: false}
	require.NoError(t, writeCardText(&buf, sampleCard(), cfg))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Size: Samoa Network\n"))
	assert.Contains(t, out, "Samoa national waters extend")
	assert.Contains(t, out, "Exclusive Economic Zone")
	assert.Contains(t, out, "1,500 km²")
	assert.Contains(t, out, "50% █████░░░░░")
	assert.Contains(t, out, "30% Target")
	assert.Contains(t, out, "eez-layer")
	assert.Contains(t, out, "Show by MPA")
	assert.Contains(t, out, "North Reef")
	assert.Contains(t, out, "33.3%")
	assert.Contains(t, out, "— no baseline area: contiguous, eez")
	assert.Contains(t, out, "— no result: eez")
	assert.Contains(t, out, "Fully Protected")
	assert.Contains(t, out, "Learn more\nSource: Wikipedia - Territorial Waters\n")
	assert.Contains(t, strings.ToUpper(out), "FOUND WITHIN PLAN")

	// Sections follow the card order
	assert.Less(t, strings.Index(out, "Exclusive Economic Zone"), strings.Index(out, "Show by MPA"))
	assert.Less(t, strings.Index(out, "Show by MPA"), strings.Index(out, "Learn more"))
}

func TestWriteCardTextSingleOnly(t *testing.T) {
	card := sampleCard()
	card.Network = nil
	card.Attributes = nil
	card.Single.Gaps = nil
	card.Single.Rows = card.Single.Rows[:1]

	var buf bytes.Buffer
	require.NoError(t, writeCardText(&buf, card, &contract.Config{Width: 120}))

	out := buf.String()
	assert.NotContains(t, out, "Show by MPA")
	assert.NotContains(t, out, "no baseline area")
	assert.NotContains(t, out, "Attributes", "empty attributes are hidden")
}

func TestWriteCardTextTruncatesLabels(t *testing.T) {
	card := sampleCard()
	card.Network = nil
	card.Single.Rows[0].Cells["class"] = strings.Repeat("x", 60)

	var buf bytes.Buffer
	require.NoError(t, writeCardText(&buf, card, &contract.Config{Width: 60}))
	assert.Contains(t, buf.String(), strings.Repeat("x", 9)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 13))
}

func TestWriteCSVCard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVCard(&buf, sampleCard()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+2*4+3*3)

	assert.Equal(t, []string{"table", "row", "column", "text", "value"}, records[0])
	assert.Equal(t, []string{"single", "eez", "value", "1,500 km²", "1500000000"}, records[2])
	assert.Equal(t, []string{"single", "contiguous", "chart", schema.GapMarker, ""}, records[7])
	assert.Equal(t, []string{"network", "s1", "eez.perc", "33.3%", "0.333"}, records[11])
}

func TestWriteSizeCardResultsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}
	require.NoError(t, NewOutWriter().WriteSizeCard(sampleCard(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got schema.SizeCardModel
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Size", got.Title)
	require.NotNil(t, got.Network)
	assert.Len(t, got.Network.Rows, 3)
	assert.NotContains(t, string(data), `"metrics"`)
}

func TestWriteSizeCardResultsFormats(t *testing.T) {
	for _, mode := range []schema.OutputMode{schema.TextOut, schema.CSVOut} {
		t.Run(string(mode), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "card.out")
			cfg := &contract.Config{Output: mode, OutputFile: path, Width: 120}
			require.NoError(t, WriteSizeCardResults(sampleCard(), cfg))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "1,500 km²")
		})
	}
}

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", renderBar(0, 10))
	assert.Equal(t, "█░░░░░░░░░", renderBar(0.001, 10), "any coverage shows")
	assert.Equal(t, "█████░░░░░", renderBar(0.5, 10))
	assert.Equal(t, "██████████", renderBar(1.7, 10))
	assert.Equal(t, "░░░░░░░░░░", renderBar(-1, 10))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrapText("one two three", 8))
	assert.Equal(t, "short", wrapText("short", 80))
	assert.Equal(t, "", wrapText("", 10))
}

func TestCardGaps(t *testing.T) {
	card := sampleCard()
	card.Network.Gaps = []string{"contiguous", "eez"}
	assert.Equal(t, []string{"contiguous", "eez"}, cardGaps(card))
}

func TestCardAbsentKeptApartFromGaps(t *testing.T) {
	card := sampleCard()
	card.Single.Gaps = nil
	card.Network.Gaps = nil
	card.Network.Absent = []string{"offshore", "eez"}
	card.Single.Absent = []string{"eez"}

	assert.Empty(t, cardGaps(card))
	assert.Equal(t, []string{"eez", "offshore"}, cardAbsent(card))

	var buf bytes.Buffer
	require.NoError(t, writeCardText(&buf, card, &contract.Config{Width: 160}))
	out := buf.String()
	assert.NotContains(t, out, "no baseline area", "absent records are not baseline gaps")
	assert.Contains(t, out, "— no result: eez, offshore")
}

func TestGetMaxLabelWidth(t *testing.T) {
	assert.Equal(t, 40, GetMaxLabelWidth(&contract.Config{Width: 200}, 3))
	assert.Equal(t, 12, GetMaxLabelWidth(&contract.Config{Width: 40}, 3))
	assert.Equal(t, 34, GetMaxLabelWidth(&contract.Config{Width: 80}, 3))
}

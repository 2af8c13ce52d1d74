package schema

// ChartOptions carries rendering hints for a metric chart column.
type ChartOptions struct {
	ShowTitle           bool   `json:"show_title"`
	ShowTargetLabel     bool   `json:"show_target_label"`
	TargetLabelPosition string `json:"target_label_position,omitempty"`
	TargetLabelStyle    string `json:"target_label_style,omitempty"`
	BarHeight           int    `json:"bar_height,omitempty"`
}

// Row is one table row keyed by column key.
// Cells hold display text, Values the unformatted numbers behind metric cells.
type Row struct {
	Key         string             `json:"key"`
	Cells       map[string]string  `json:"cells"`
	Values      map[string]float64 `json:"values,omitempty"`
	Target      float64            `json:"target,omitempty"` // Objective target as a ratio, 0 when none
	TargetLabel string             `json:"target_label,omitempty"`
}

// Column describes one column of a table: its label, share of width and how its
// cells were produced.
type Column struct {
	Key        string        `json:"key"`
	Label      string        `json:"label"`
	Group      string        `json:"group,omitempty"` // Parent header for grouped columns
	Kind       ColumnKind    `json:"kind"`
	Width      int           `json:"width,omitempty"`
	MetricID   string        `json:"metric_id,omitempty"`
	ValueLabel string        `json:"value_label,omitempty"`
	Format     string        `json:"format,omitempty"` // Value formatter the cells were produced with
	Chart      *ChartOptions `json:"chart,omitempty"`
}

// TableModel is the descriptor a table surface renders.
type TableModel struct {
	Title   string   `json:"title,omitempty"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
	Gaps    []string `json:"gaps,omitempty"`   // Class ids with no baseline area
	Absent  []string `json:"absent,omitempty"` // Class ids with cells that have no record
}

// Cell returns the cell text for a row and column key.
func (t TableModel) Cell(rowIdx int, key string) string {
	if rowIdx < 0 || rowIdx >= len(t.Rows) {
		return ""
	}
	return t.Rows[rowIdx].Cells[key]
}

// SizeCardModel is the full render model of the size card.
type SizeCardModel struct {
	Title           string          `json:"title"`
	SketchID        string          `json:"sketch_id"`
	SketchName      string          `json:"sketch_name,omitempty"`
	GeographyID     string          `json:"geography_id"`
	Introduction    string          `json:"introduction"`
	Single          TableModel      `json:"single"`
	Network         *TableModel     `json:"network,omitempty"`
	NetworkTitle    string          `json:"network_title,omitempty"`
	GapNote         string          `json:"gap_note,omitempty"`    // Explains the gap marker of classes without baseline
	AbsentNote      string          `json:"absent_note,omitempty"` // Explains the gap marker of cells without a record
	LearnMoreTitle  string          `json:"learn_more_title,omitempty"`
	LearnMore       []string        `json:"learn_more,omitempty"`
	AttributesTitle string          `json:"attributes_title,omitempty"`
	Attributes      []UserAttribute `json:"attributes,omitempty"` // Hidden when empty
}

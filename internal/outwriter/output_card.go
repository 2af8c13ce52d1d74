package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const barWidth = 10

// WriteSizeCardResults outputs the size card, dispatching based on the output format configured.
func WriteSizeCardResults(card *schema.SizeCardModel, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, card)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCard(w, card)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCardText(w, card, cfg)
		}, "Wrote text")
	}
}

// writeCardText writes the human-readable card: title, introduction, tables and notes.
func writeCardText(w io.Writer, card *schema.SizeCardModel, cfg *contract.Config) error {
	title := painter(contract.TitleColor, cfg.UseColors)
	gap := painter(contract.GapColor, cfg.UseColors)
	width := getTermWidth(cfg)

	heading := card.Title
	if card.SketchName != "" {
		heading = fmt.Sprintf("%s: %s", card.Title, card.SketchName)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", title(heading)); err != nil {
		return err
	}
	if card.Introduction != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", wrapText(card.Introduction, width)); err != nil {
			return err
		}
	}

	if err := writeTableText(w, card.Single, cfg); err != nil {
		return err
	}

	if card.Network != nil {
		if _, err := fmt.Fprintf(w, "\n%s\n", title(card.NetworkTitle)); err != nil {
			return err
		}
		if err := writeTableText(w, *card.Network, cfg); err != nil {
			return err
		}
	}

	if err := writeGapNote(w, gap(schema.GapMarker), card.GapNote, "no baseline area", cardGaps(card)); err != nil {
		return err
	}
	if err := writeGapNote(w, gap(schema.GapMarker), card.AbsentNote, "no result", cardAbsent(card)); err != nil {
		return err
	}

	if len(card.Attributes) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", title(card.AttributesTitle)); err != nil {
			return err
		}
		if err := writeAttributesText(w, card.Attributes, cfg); err != nil {
			return err
		}
	}

	if len(card.LearnMore) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", title(card.LearnMoreTitle)); err != nil {
			return err
		}
		for _, line := range card.LearnMore {
			if _, err := fmt.Fprintf(w, "%s\n", wrapText(line, width)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTableText renders a table model with tablewriter. Grouped columns get a two line
// header and chart columns get a coverage bar plus a target column.
func writeTableText(w io.Writer, model schema.TableModel, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	gap := painter(contract.GapColor, cfg.UseColors)
	withTarget := hasTargets(model)
	labelWidth := GetMaxLabelWidth(cfg, len(model.Columns)-1)

	// 1. Define Headers
	var headers []string
	for _, col := range model.Columns {
		label := strings.TrimSpace(col.Label)
		if col.Group != "" {
			label = col.Group + "\n" + label
		}
		headers = append(headers, label)
		if col.Kind == schema.MetricChartColumn && withTarget {
			headers = append(headers, "")
		}
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 2. Populate Rows
	var data [][]string
	for _, row := range model.Rows {
		var record []string
		for i, col := range model.Columns {
			cell := row.Cells[col.Key]
			switch {
			case cell == schema.GapMarker:
				cell = gap(cell)
			case i == 0:
				cell = contract.TruncateText(cell, labelWidth)
			case col.Kind == schema.MetricChartColumn:
				cell = chartCell(cell, row.Values[col.Key], row.Target, cfg.UseColors)
			}
			record = append(record, cell)
			if col.Kind == schema.MetricChartColumn && withTarget {
				record = append(record, row.TargetLabel)
			}
		}
		data = append(data, record)
	}

	// 3. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeAttributesText(w io.Writer, attrs []schema.UserAttribute, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	labelWidth := GetMaxLabelWidth(cfg, 1)
	var data [][]string
	for _, a := range attrs {
		data = append(data, []string{contract.TruncateText(a.Label, labelWidth), a.DisplayValue()})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// chartCell appends a coverage bar to the formatted percent.
func chartCell(text string, ratio, target float64, useColors bool) string {
	bar := renderBar(ratio, barWidth)
	if useColors {
		bar = contract.GetColorLabel(bar, ratio, target)
	}
	return text + " " + bar
}

// renderBar draws ratio (clamped to [0, 1]) as a bar of width cells.
func renderBar(ratio float64, width int) string {
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio*float64(width) + 0.5)
	if filled == 0 && ratio > 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func hasTargets(model schema.TableModel) bool {
	for _, row := range model.Rows {
		if row.TargetLabel != "" {
			return true
		}
	}
	return false
}

// writeGapNote prints a footnote for the marker listing ids. Nothing is printed without ids.
func writeGapNote(w io.Writer, marker, note, fallback string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if note == "" {
		note = fallback
	}
	_, err := fmt.Fprintf(w, "\n%s %s: %s\n", marker, note, strings.Join(ids, ", "))
	return err
}

// cardGaps merges the no-baseline classes of all card tables in first-seen order.
func cardGaps(card *schema.SizeCardModel) []string {
	ids := [][]string{card.Single.Gaps}
	if card.Network != nil {
		ids = append(ids, card.Network.Gaps)
	}
	return mergeFirstSeen(ids...)
}

// cardAbsent merges the classes with cells that have no record in first-seen order.
func cardAbsent(card *schema.SizeCardModel) []string {
	ids := [][]string{card.Single.Absent}
	if card.Network != nil {
		ids = append(ids, card.Network.Absent)
	}
	return mergeFirstSeen(ids...)
}

func mergeFirstSeen(lists ...[]string) []string {
	seen := map[string]bool{}
	var merged []string
	for _, ids := range lists {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				merged = append(merged, id)
			}
		}
	}
	return merged
}

// wrapText breaks text on spaces so lines stay within width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		wordLen := len([]rune(word))
		if i > 0 {
			if lineLen+1+wordLen > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += wordLen
	}
	return b.String()
}

// writeCSVCard writes every cell of the card tables as one long-format record.
func writeCSVCard(w io.Writer, card *schema.SizeCardModel) error {
	header := []string{"table", "row", "column", "text", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		if err := writeCSVTable(cw, "single", card.Single); err != nil {
			return err
		}
		if card.Network != nil {
			return writeCSVTable(cw, "network", *card.Network)
		}
		return nil
	})
}

func writeCSVTable(w *csv.Writer, name string, model schema.TableModel) error {
	for _, row := range model.Rows {
		for _, col := range model.Columns {
			value := ""
			if v, ok := row.Values[col.Key]; ok {
				value = strconv.FormatFloat(v, 'f', -1, 64)
			}
			rec := []string{name, row.Key, col.Key, row.Cells[col.Key], value}
			if err := w.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}
	return nil
}

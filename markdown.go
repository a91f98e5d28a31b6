package scribe

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rower provides positional row data for [Writer.Table].
type Rower interface {
	Row() []string
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value any
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// TableOptions controls [Writer.TableWith].
type TableOptions struct {
	// Align sets per-column alignment markers. Missing columns are left
	// aligned.
	Align []Alignment
	// Pad pads every cell to its column's display width.
	Pad bool
	// MaxWidths truncates cells wider than the limit with "...". A zero
	// value means no limit for that column.
	MaxWidths []int
}

// Table appends a pipe table. Each row is positional ([]any, []string or a
// [Rower]) or keyed (map[string]any or map[string]string, looked up by
// header). Writer cells are rendered as plain text.
func (w *Writer) Table(headers []string, rows ...any) *Writer {
	return w.TableWith(TableOptions{}, headers, rows...)
}

// TableWith appends a pipe table rendered with opts.
func (w *Writer) TableWith(opts TableOptions, headers []string, rows ...any) *Writer {
	numCols := len(headers)
	if numCols == 0 {
		return w
	}

	header := make([]string, numCols)
	for i, h := range headers {
		header[i] = w.cell(h)
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = w.row(headers, row)
	}

	for i, limit := range opts.MaxWidths {
		if i >= numCols || limit <= 0 {
			continue
		}
		for _, row := range cells {
			if i < len(row) {
				row[i] = truncateCell(row[i], limit)
			}
		}
	}

	aligns := extendAligns(opts.Align, numCols)
	widths := make([]int, numCols)
	if opts.Pad {
		// Minimum 3 for alignment markers.
		for i, col := range header {
			widths[i] = max(3, runewidth.StringWidth(col))
		}
		for _, row := range cells {
			for i, cell := range row {
				if cw := runewidth.StringWidth(cell); i < numCols && cw > widths[i] {
					widths[i] = cw
				}
			}
		}
	}

	lines := make([]string, 0, len(cells)+2)
	lines = append(lines, markdownRow(header, widths, aligns))

	sep := make([]string, numCols)
	for i, width := range widths {
		width = max(3, width)
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range cells {
		lines = append(lines, markdownRow(row, widths, aligns))
	}
	return w.block(strings.Join(lines, "\n"))
}

// row resolves one table row to its cells.
func (w *Writer) row(headers []string, row any) []string {
	var values []any
	switch r := row.(type) {
	case []any:
		values = r
	case []string:
		for _, s := range r {
			values = append(values, s)
		}
	case Rower:
		for _, s := range r.Row() {
			values = append(values, s)
		}
	case map[string]any:
		for _, h := range headers {
			values = append(values, r[h])
		}
	case map[string]string:
		for _, h := range headers {
			values = append(values, r[h])
		}
	default:
		values = []any{row}
	}
	out := make([]string, len(headers))
	for i := range out {
		if i < len(values) {
			out[i] = w.cell(values[i])
		}
	}
	return out
}

// cell renders a single-line table cell.
func (w *Writer) cell(v any) string {
	var s string
	if x, ok := v.(*Writer); ok {
		s = strings.ReplaceAll(x.ToPlainText(), "|", `\|`)
	} else if v != nil {
		s = textOf(v, w.safe)
	}
	return strings.Join(strings.Fields(s), " ")
}

func truncateCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func markdownRow(cells []string, widths []int, aligns []Alignment) string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// Definitions appends one "**key**: value" line per pair, in order.
func (w *Writer) Definitions(pairs ...KeyValue) *Writer {
	if len(pairs) == 0 {
		return w
	}
	f := w.Fmt()
	lines := make([]string, len(pairs))
	for i, kv := range pairs {
		lines[i] = fmt.Sprintf("%s: %s", f.Bold(kv.Key), textOf(kv.Value, w.safe))
	}
	return w.block(strings.Join(lines, "\n"))
}

// DefinitionsMap appends the entries of m as definitions sorted by key.
func (w *Writer) DefinitionsMap(m map[string]any) *Writer {
	pairs := make([]KeyValue, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, KeyValue{Key: k, Value: m[k]})
	}
	return w.Definitions(pairs...)
}

package output

import "strings"

// Table is a simple ASCII table for CLI views.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: headers,
		widths:  make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = displayWidth(h)
	}
	return t
}

// AddRow adds a row, padding or dropping cells to the header width.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
	for i, cell := range row {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}
}

// Render returns the table with a header separator and no separators
// between data rows.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(t.renderRow(t.headers))
	sb.WriteString("\n")
	sb.WriteString(t.renderSeparator())
	sb.WriteString("\n")
	for _, row := range t.rows {
		sb.WriteString(t.renderRow(row))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Table) renderRow(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", t.widths[i]-displayWidth(cell))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func (t *Table) renderSeparator() string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, "  ")
}

// displayWidth returns the printable width of a cell, ignoring ANSI color
// sequences.
func displayWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			width++
		}
	}
	return width
}

package renderer

import "strings"

const defaultColumnWidth = 10

// Table renders fixed-width pipe-delimited lines. Widths are decided once,
// then every row comes out the same shape. Callers must pass exactly one
// cell per column.
type Table struct {
	widths []int
}

// NewTable returns a table of n columns, each at the default width.
func NewTable(n int) *Table {
	t := &Table{widths: make([]int, n)}
	for i := range t.widths {
		t.widths[i] = defaultColumnWidth
	}
	return t
}

// SetWidths assigns a width per column, first to last. Columns beyond the
// given widths keep the default.
func (t *Table) SetWidths(widths ...int) *Table {
	copy(t.widths, widths)
	return t
}

// Row renders one line, each cell left-aligned and padded to its column
// width, delimited by pipes with a space of padding on each side. A cell
// wider than its column, colored cells included, stretches the line rather
// than being cut.
func (t *Table) Row(cells ...string) string {
	var b strings.Builder
	b.WriteString("|")
	for i, cell := range cells {
		b.WriteString(" ")
		if pad := t.widths[i] - len(cell); pad > 0 {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		} else {
			b.WriteString(cell)
		}
		b.WriteString(" |")
	}
	return b.String()
}

// Rule renders the horizontal rule matching the row shape, dashes where a
// row has content and padding.
func (t *Table) Rule() string {
	var b strings.Builder
	b.WriteString("|")
	for _, w := range t.widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	return b.String()
}

package escp

// ColumnDef describes one table column: a header name and a fixed width
// in characters.
type ColumnDef struct {
	Name  string
	Width int
}

// Table renders fixed-width columns with a bold header row. Cell text is
// truncated to its column width; columns and rows that run past the
// region are dropped.
type Table struct {
	columns []ColumnDef
	rows    [][]string
}

var _ RegionWidget = (*Table)(nil)

// NewTable creates a table from column definitions and row data. Rows
// shorter than the column list render empty trailing cells.
func NewTable(columns []ColumnDef, rows [][]string) *Table {
	return &Table{columns: columns, rows: rows}
}

// Render writes the header and data rows into the region.
func (t *Table) Render(b *PageBuilder, region Region) {
	if region.Height() == 0 {
		return
	}
	limit := region.X() + region.Width()

	colX := region.X()
	for _, col := range t.columns {
		if colX >= limit {
			break
		}
		t.writeCell(b, colX, region.Y(), col.Name, min(col.Width, limit-colX), StyleBold)
		colX += col.Width
	}

	for rowIdx, row := range t.rows {
		y := region.Y() + 1 + rowIdx
		if y >= region.Y()+region.Height() {
			break
		}
		colX = region.X()
		for colIdx, col := range t.columns {
			if colX >= limit {
				break
			}
			var text string
			if colIdx < len(row) {
				text = row[colIdx]
			}
			t.writeCell(b, colX, y, text, min(col.Width, limit-colX), StyleNone)
			colX += col.Width
		}
	}
}

func (t *Table) writeCell(b *PageBuilder, x, y int, text string, maxChars int, style StyleFlags) {
	n := 0
	for _, r := range text {
		if n >= maxChars {
			break
		}
		b.WriteAt(x+n, y, r, style)
		n++
	}
}

package escp

// Cell represents a single character position in the page grid: one
// printable ASCII byte plus its style flags. Cells are immutable values;
// they are compared with ==.
type Cell struct {
	char  byte
	style StyleFlags
}

// EmptyCell is a space with no styling. PageBuilder grids start out filled
// with it.
var EmptyCell = Cell{char: ' ', style: StyleNone}

// NewCell creates a Cell holding the given character and style.
// Characters outside the printable ASCII range [32, 126] (control
// characters, DEL, and anything non-ASCII) are replaced with '?' at
// construction. The replacement is never deferred: a Cell always holds a
// byte the printer can render.
func NewCell(r rune, style StyleFlags) Cell {
	if r < 32 || r > 126 {
		return Cell{char: '?', style: style}
	}
	return Cell{char: byte(r), style: style}
}

// Char returns the printable ASCII byte stored in the cell.
func (c Cell) Char() byte {
	return c.char
}

// Rune returns the cell's character as a rune.
func (c Cell) Rune() rune {
	return rune(c.char)
}

// Style returns the cell's style flags.
func (c Cell) Style() StyleFlags {
	return c.style
}

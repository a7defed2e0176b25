package escp

// Page is an immutable 160x51 grid of Cells, frozen from a PageBuilder.
// A Page can be read and serialized from any number of goroutines.
type Page struct {
	cells []Cell // row-major, PageWidth*PageHeight
}

// CellAt returns the cell at (x, y) and true, or the zero Cell and false
// if the position is outside the page.
func (p Page) CellAt(x, y int) (Cell, bool) {
	if x < 0 || x >= PageWidth || y < 0 || y >= PageHeight {
		return Cell{}, false
	}
	return p.cells[y*PageWidth+x], true
}

// row returns the y-th row of the grid. Used by the serializer.
func (p Page) row(y int) []Cell {
	return p.cells[y*PageWidth : (y+1)*PageWidth]
}

// PageBuilder accumulates writes into a mutable 160x51 grid. It is the
// exclusive-ownership phase of a Page: build up the grid, call Build to
// freeze it, and use a fresh builder for the next page.
//
// All write operations silently clip at the page edge. The physical page
// size is fixed, so per-character overflow during the final write is not
// an error; structural violations are caught earlier, during widget
// composition.
type PageBuilder struct {
	cells []Cell
}

// NewPageBuilder creates a builder with every cell initialized to
// EmptyCell.
func NewPageBuilder() *PageBuilder {
	cells := make([]Cell, PageWidth*PageHeight)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return &PageBuilder{cells: cells}
}

// idx converts (x, y) to a flat index, or -1 if out of bounds.
func (b *PageBuilder) idx(x, y int) int {
	if x < 0 || x >= PageWidth || y < 0 || y >= PageHeight {
		return -1
	}
	return y*PageWidth + x
}

// WriteAt writes a single character at (x, y). Out-of-bounds writes are
// silently ignored. The character is normalized by NewCell.
func (b *PageBuilder) WriteAt(x, y int, r rune, style StyleFlags) *PageBuilder {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = NewCell(r, style)
	}
	return b
}

// WriteString writes text starting at (x, y), one cell per rune.
// Characters past the right page edge are silently truncated.
func (b *PageBuilder) WriteString(x, y int, text string, style StyleFlags) *PageBuilder {
	for _, r := range text {
		if x >= PageWidth {
			break
		}
		b.WriteAt(x, y, r, style)
		x++
	}
	return b
}

// FillRegion fills a region with the given character. Useful for rules
// and background patterns.
func (b *PageBuilder) FillRegion(region Region, r rune, style StyleFlags) *PageBuilder {
	for y := region.y; y < region.y+region.height; y++ {
		for x := region.x; x < region.x+region.width; x++ {
			b.WriteAt(x, y, r, style)
		}
	}
	return b
}

// RenderWidget renders a region-based content widget into the given
// region.
func (b *PageBuilder) RenderWidget(region Region, w RegionWidget) *PageBuilder {
	w.Render(b, region)
	return b
}

// Render renders a widget tree onto this page. The tree is traversed
// depth-first in insertion order, each node at its cumulative absolute
// position, with the root at (0, 0). The tree is not mutated and may be
// rendered any number of times; output is identical on every pass.
//
// Rendering is fail-fast: the first *OutOfBoundsError aborts the pass.
// Through the tree API this is unreachable, since composition-time
// validation already rejected anything that would not fit.
func (b *PageBuilder) Render(w Widget) error {
	ctx := newRenderContext(b)
	return w.RenderTo(ctx, Point{0, 0})
}

// Build freezes the builder's grid into an immutable Page. The Page owns
// a copy of the cells, so later writes through the builder never leak
// into a frozen page; use a fresh builder per page regardless.
func (b *PageBuilder) Build() Page {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Page{cells: cells}
}

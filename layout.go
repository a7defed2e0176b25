package escp

// Layout allocators manufacture correctly sized, correctly positioned
// Containers by cutting space off a fixed parent area. They are cursor
// objects used during composition; they are not part of the widget tree
// and hold no rendering responsibility. The caller still inserts each
// allocated container into a parent with AddChild.

// Column cuts a parent area into vertically stacked rows.
type Column struct {
	width, height int
	cursorY       int
}

// NewColumn creates a column allocator over a widthxheight area.
func NewColumn(width, height int) *Column {
	return &Column{width: width, height: height}
}

// Remaining returns the unallocated height.
func (c *Column) Remaining() int {
	return c.height - c.cursorY
}

// Area allocates the next row of the given height: a full-width Container
// positioned at (0, cursor). The cursor advances by height on success.
//
// If the request exceeds the remaining space it returns
// *InsufficientSpaceError and leaves the cursor unchanged, so a smaller
// retry is valid.
func (c *Column) Area(height int) (*Container, Point, error) {
	if c.cursorY+height > c.height {
		return nil, Point{}, &InsufficientSpaceError{
			Available: c.height - c.cursorY,
			Required:  height,
			Layout:    "Column",
		}
	}
	pos := Point{X: 0, Y: c.cursorY}
	c.cursorY += height
	return NewContainer(c.width, height), pos, nil
}

// Row cuts a parent area into horizontally adjacent columns.
type Row struct {
	width, height int
	cursorX       int
}

// NewRow creates a row allocator over a widthxheight area.
func NewRow(width, height int) *Row {
	return &Row{width: width, height: height}
}

// Remaining returns the unallocated width.
func (r *Row) Remaining() int {
	return r.width - r.cursorX
}

// Area allocates the next column of the given width: a full-height
// Container at (cursor, 0). Failure semantics match Column.Area.
func (r *Row) Area(width int) (*Container, Point, error) {
	if r.cursorX+width > r.width {
		return nil, Point{}, &InsufficientSpaceError{
			Available: r.width - r.cursorX,
			Required:  width,
			Layout:    "Row",
		}
	}
	pos := Point{X: r.cursorX, Y: 0}
	r.cursorX += width
	return NewContainer(width, r.height), pos, nil
}

// Stack produces full-size overlapping layers. It is stateless: every
// Area call returns an independent container covering the whole area at
// (0, 0). Layers only collide if the caller inserts them into the same
// parent, in which case ordinary Container overlap rules apply.
type Stack struct {
	width, height int
}

// NewStack creates a stack allocator over a widthxheight area.
func NewStack(width, height int) *Stack {
	return &Stack{width: width, height: height}
}

// Area returns a fresh full-size Container at (0, 0).
func (s *Stack) Area() (*Container, Point) {
	return NewContainer(s.width, s.height), Point{}
}

package escp

// Frame draws an ASCII border ('+' corners, '-' and '|' edges) around an
// inner widget, with an optional title in the top border. The inner
// widget renders with one cell of padding on every side. Regions smaller
// than 3x3 cannot show a border and render nothing.
type Frame struct {
	title string
	inner RegionWidget
}

var _ RegionWidget = (*Frame)(nil)

// NewFrame creates a frame around the given content widget.
func NewFrame(inner RegionWidget) *Frame {
	return &Frame{inner: inner}
}

// WithTitle sets the title drawn in the top border, starting two cells
// in from the left corner.
func (f *Frame) WithTitle(title string) *Frame {
	f.title = title
	return f
}

// Render draws the border, the title, and the inner content.
func (f *Frame) Render(b *PageBuilder, region Region) {
	if region.Width() < 3 || region.Height() < 3 {
		return
	}

	x, y := region.X(), region.Y()
	w, h := region.Width(), region.Height()

	b.WriteAt(x, y, '+', StyleNone)
	b.WriteAt(x+w-1, y, '+', StyleNone)
	b.WriteAt(x, y+h-1, '+', StyleNone)
	b.WriteAt(x+w-1, y+h-1, '+', StyleNone)

	for dx := 1; dx < w-1; dx++ {
		b.WriteAt(x+dx, y, '-', StyleNone)
		b.WriteAt(x+dx, y+h-1, '-', StyleNone)
	}
	for dy := 1; dy < h-1; dy++ {
		b.WriteAt(x, y+dy, '|', StyleNone)
		b.WriteAt(x+w-1, y+dy, '|', StyleNone)
	}

	if f.title != "" {
		// Leave room for both corners and a trailing border cell.
		writeClipped(b, x+2, y, x+2+max(0, w-4), f.title, StyleNone)
	}

	if f.inner != nil {
		if inner, err := region.WithPadding(1, 1, 1, 1); err == nil {
			f.inner.Render(b, inner)
		}
	}
}

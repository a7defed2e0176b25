package escp

// Text renders a single line of styled text on the first row of its
// region, truncated at the region's right edge.
type Text struct {
	text  string
	style StyleFlags
}

var _ RegionWidget = (*Text)(nil)

// NewText creates a Text widget with no styling.
func NewText(text string) *Text {
	return &Text{text: text}
}

// WithStyle sets the widget's style.
func (t *Text) WithStyle(style StyleFlags) *Text {
	t.style = style
	return t
}

// Render writes the text on the region's first row.
func (t *Text) Render(b *PageBuilder, region Region) {
	x := region.X()
	limit := region.X() + region.Width()
	for _, r := range t.text {
		if x >= limit {
			break
		}
		b.WriteAt(x, region.Y(), r, t.style)
		x++
	}
}

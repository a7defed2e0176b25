package escp

import (
	"fmt"
	"strings"
)

// Label is the leaf node of the widget tree: a fixed-width, single-line
// run of validated text with optional styling. An empty label (no text
// added) renders nothing.
type Label struct {
	width   int
	text    string
	hasText bool
	style   StyleFlags
}

var _ Widget = (*Label)(nil)

// NewLabel creates an empty label of the given width. Height is always 1.
//
// Like NewContainer, a non-positive width is a programmer error on a
// construction-time constant and panics.
func NewLabel(width int) *Label {
	if width <= 0 {
		panic(fmt.Sprintf("escp: label width must be positive, got %d", width))
	}
	return &Label{width: width}
}

// Width returns the label's declared width in columns.
func (l *Label) Width() int { return l.width }

// Height returns 1; labels are strictly single-line.
func (l *Label) Height() int { return 1 }

// AddText sets the label's content. It returns *TextExceedsWidthError if
// the text's byte length exceeds the label width or if the text contains
// any newline sequence. Validated text is stored immutably.
func (l *Label) AddText(text string) (*Label, error) {
	if len(text) > l.width || strings.ContainsAny(text, "\r\n") {
		return nil, &TextExceedsWidthError{TextLength: len(text), WidgetWidth: l.width}
	}
	l.text = text
	l.hasText = true
	return l, nil
}

// Bold adds the bold flag. Style transforms are pure accumulations and
// order-independent: l.Bold().Underline() equals l.Underline().Bold().
func (l *Label) Bold() *Label {
	l.style = l.style.WithBold()
	return l
}

// Underline adds the underline flag.
func (l *Label) Underline() *Label {
	l.style = l.style.WithUnderline()
	return l
}

// RenderTo writes the label's text at the given absolute position. An
// empty label renders nothing and never fails.
func (l *Label) RenderTo(ctx *RenderContext, pos Point) error {
	if !l.hasText {
		return nil
	}
	return ctx.WriteStyled(l.text, pos, l.style)
}

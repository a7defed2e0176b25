package escp

// RenderContext wraps a PageBuilder for the duration of one render pass.
// It enforces clip bounds, fixed at the full page for this system, and
// delegates validated writes to the builder.
//
// Validation is two-tier: the context checks only the start position of a
// write (a structural violation, hard error), while the builder silently
// truncates characters that run past the physical page edge.
type RenderContext struct {
	builder *PageBuilder
	clip    Bounds
}

func newRenderContext(b *PageBuilder) *RenderContext {
	return &RenderContext{
		builder: b,
		clip:    Bounds{X: 0, Y: 0, Width: PageWidth, Height: PageHeight},
	}
}

// ClipBounds returns the context's clip rectangle.
func (ctx *RenderContext) ClipBounds() Bounds {
	return ctx.clip
}

// WriteText writes unstyled text at the given absolute position.
// It returns *OutOfBoundsError if the start position lies outside the
// clip bounds; text running past the right edge is silently truncated by
// the builder.
func (ctx *RenderContext) WriteText(text string, pos Point) error {
	if err := ctx.checkStart(pos); err != nil {
		return err
	}
	ctx.builder.WriteString(pos.X, pos.Y, text, StyleNone)
	return nil
}

// WriteStyled writes styled text at the given absolute position, with the
// same validation as WriteText.
func (ctx *RenderContext) WriteStyled(text string, pos Point, style StyleFlags) error {
	if err := ctx.checkStart(pos); err != nil {
		return err
	}
	ctx.builder.WriteString(pos.X, pos.Y, text, style)
	return nil
}

// checkStart validates the start position of a write against the clip
// bounds. Only the start is checked; horizontal overflow is the
// builder's concern.
func (ctx *RenderContext) checkStart(pos Point) error {
	if pos.X < ctx.clip.X || pos.X >= ctx.clip.right() ||
		pos.Y < ctx.clip.Y || pos.Y >= ctx.clip.bottom() {
		return &OutOfBoundsError{Position: pos, Bounds: ctx.clip}
	}
	return nil
}

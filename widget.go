package escp

// Widget is the capability shared by every composable widget-tree node:
// a fixed size declared at construction, and an immutable render pass.
//
// RenderTo receives the node's absolute page position, already summed
// over every ancestor's relative offset. Implementations must not mutate
// the receiver; the same tree is safely rendered from multiple goroutines
// as long as each render pass owns its RenderContext.
type Widget interface {
	// Width returns the widget's width in columns. Fixed for the
	// widget's lifetime.
	Width() int

	// Height returns the widget's height in rows. Fixed for the
	// widget's lifetime.
	Height() int

	// RenderTo renders the widget at the given absolute position.
	// The only error a well-composed tree can produce is
	// *OutOfBoundsError, and composition-time validation makes even
	// that unreachable through this package's API.
	RenderTo(ctx *RenderContext, pos Point) error
}

// widgetNode stores a child widget together with its parent-relative
// position. Go interface values already erase the child's concrete type,
// so containers of heterogeneous widgets need no further machinery; the
// dimensions are cached at insertion so overlap checks do not re-enter
// the child.
type widgetNode struct {
	widget        Widget
	position      Point
	width, height int
}

// bounds returns the node's bounding box in parent-relative coordinates.
func (n widgetNode) bounds() Bounds {
	return Bounds{X: n.position.X, Y: n.position.Y, Width: n.width, Height: n.height}
}

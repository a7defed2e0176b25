package escp

import (
	"fmt"
	"math"
)

// Container is the internal node of the widget tree: a fixed-size box
// holding positioned children. It owns its children outright; children
// never reference their parent, so trees cannot contain cycles.
//
// Containers never write cells themselves; only leaves produce output.
// Children render depth-first in insertion order, which is the sole
// determinant of paint order.
type Container struct {
	width, height int
	children      []widgetNode
}

var _ Widget = (*Container)(nil)

// NewContainer creates a container with the given dimensions.
//
// Dimensions are construction-time constants chosen by the caller, not
// user data, so non-positive values are a programmer error: NewContainer
// panics rather than returning an error.
func NewContainer(width, height int) *Container {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("escp: container dimensions must be positive, got %dx%d", width, height))
	}
	return &Container{width: width, height: height}
}

// Width returns the container's width in columns.
func (c *Container) Width() int { return c.width }

// Height returns the container's height in rows.
func (c *Container) Height() int { return c.height }

// ChildCount returns the number of children added so far.
func (c *Container) ChildCount() int { return len(c.children) }

// AddChild places a child widget at the given parent-relative position.
//
// Validation runs in order:
//  1. position + child size must not overflow (*IntegerOverflowError,
//     naming the failed computation),
//  2. the child's bounding box must lie within [0,width)x[0,height)
//     (*ChildExceedsParentError),
//  3. the box must not intersect any existing sibling's box
//     (*OverlappingChildrenError). Intersection uses strict inequality
//     on both ends of both axes, so children that merely share an edge
//     are accepted.
//
// On failure the container is unchanged; a failed AddChild never leaves
// a partial insert behind. On success the child is appended to the
// insertion-ordered list.
func (c *Container) AddChild(w Widget, pos Point) error {
	childWidth := w.Width()
	childHeight := w.Height()

	if pos.X > math.MaxInt-childWidth {
		return &IntegerOverflowError{
			Operation: fmt.Sprintf("child position.x (%d) + width (%d)", pos.X, childWidth),
		}
	}
	if pos.Y > math.MaxInt-childHeight {
		return &IntegerOverflowError{
			Operation: fmt.Sprintf("child position.y (%d) + height (%d)", pos.Y, childHeight),
		}
	}

	childRight := pos.X + childWidth
	childBottom := pos.Y + childHeight
	if pos.X < 0 || pos.Y < 0 || childRight > c.width || childBottom > c.height {
		return &ChildExceedsParentError{
			ParentWidth:  c.width,
			ParentHeight: c.height,
			ChildWidth:   childWidth,
			ChildHeight:  childHeight,
			Position:     pos,
		}
	}

	candidate := Bounds{X: pos.X, Y: pos.Y, Width: childWidth, Height: childHeight}
	for _, existing := range c.children {
		eb := existing.bounds()
		// AABB intersection with strict inequality: touching edges are
		// not an overlap.
		overlaps := candidate.right() > eb.X && candidate.X < eb.right() &&
			candidate.bottom() > eb.Y && candidate.Y < eb.bottom()
		if overlaps {
			return &OverlappingChildrenError{First: eb, Second: candidate}
		}
	}

	c.children = append(c.children, widgetNode{
		widget:   w,
		position: pos,
		width:    childWidth,
		height:   childHeight,
	})
	return nil
}

// RenderTo renders every child at its cumulative absolute position, in
// insertion order, failing fast on the first error.
func (c *Container) RenderTo(ctx *RenderContext, pos Point) error {
	for _, child := range c.children {
		childPos := Point{X: pos.X + child.position.X, Y: pos.Y + child.position.Y}
		if err := child.widget.RenderTo(ctx, childPos); err != nil {
			return err
		}
	}
	return nil
}

package escp

import "fmt"

// The layout and composition APIs return typed errors carrying the
// concrete offending values. Callers can match them with errors.As.

// InvalidDimensionsError reports a region or padding operation that would
// produce a zero-or-negative width or height.
type InvalidDimensionsError struct {
	Width, Height int
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("invalid region dimensions: %dx%d (must be non-zero and within page bounds)", e.Width, e.Height)
}

// RegionOutOfBoundsError reports a region that extends beyond the fixed
// page geometry (160x51), including positions that overflow arithmetic.
type RegionOutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *RegionOutOfBoundsError) Error() string {
	return fmt.Sprintf("region out of bounds: position (%d, %d), size (%dx%d) exceeds page dimensions (%dx%d)",
		e.X, e.Y, e.Width, e.Height, PageWidth, PageHeight)
}

// InvalidSplitError reports a split request larger than the parent's
// corresponding dimension.
type InvalidSplitError struct {
	ParentSize, SplitSize int
}

func (e *InvalidSplitError) Error() string {
	return fmt.Sprintf("invalid region split: split size %d exceeds parent size %d", e.SplitSize, e.ParentSize)
}

// ChildExceedsParentError reports a child whose bounding box does not fit
// inside its parent container.
type ChildExceedsParentError struct {
	ParentWidth, ParentHeight int
	ChildWidth, ChildHeight   int
	Position                  Point
}

func (e *ChildExceedsParentError) Error() string {
	return fmt.Sprintf("child (%dx%d at %s) exceeds parent bounds (%dx%d)",
		e.ChildWidth, e.ChildHeight, e.Position, e.ParentWidth, e.ParentHeight)
}

// OverlappingChildrenError reports two sibling bounding boxes that
// intersect. Touching edges do not count as overlap.
type OverlappingChildrenError struct {
	First, Second Bounds
}

func (e *OverlappingChildrenError) Error() string {
	return fmt.Sprintf("overlapping children: %s intersects %s", e.Second, e.First)
}

// InsufficientSpaceError reports a layout allocator that has run out of
// room for the requested area.
type InsufficientSpaceError struct {
	Available, Required int
	Layout              string
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("%s layout: insufficient space: %d required, %d available", e.Layout, e.Required, e.Available)
}

// IntegerOverflowError reports a coordinate computation that overflowed.
// Operation names the failed computation with its operands.
type IntegerOverflowError struct {
	Operation string
}

func (e *IntegerOverflowError) Error() string {
	return fmt.Sprintf("integer overflow in %s", e.Operation)
}

// TextExceedsWidthError reports label text longer than the label's
// declared width, or text containing a newline sequence.
type TextExceedsWidthError struct {
	TextLength, WidgetWidth int
}

func (e *TextExceedsWidthError) Error() string {
	return fmt.Sprintf("text length %d exceeds widget width %d (labels are single-line)", e.TextLength, e.WidgetWidth)
}

// OutOfBoundsError reports a render-phase write whose start position lies
// outside the context's clip bounds. With honest composition-time
// validation it is unreachable through the widget tree API.
type OutOfBoundsError struct {
	Position Point
	Bounds   Bounds
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("write at %s outside clip bounds %s", e.Position, e.Bounds)
}

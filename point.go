package escp

import "fmt"

// Point represents an x/y coordinate. Depending on context it is either
// page-absolute or relative to a parent container.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Bounds represents an unvalidated rectangle. It appears in error values
// to report offending child boxes and clip regions; unlike Region it makes
// no guarantees about its fields.
type Bounds struct {
	X, Y          int
	Width, Height int
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%d, %d, %dx%d)", b.X, b.Y, b.Width, b.Height)
}

// right returns the exclusive right edge.
func (b Bounds) right() int {
	return b.X + b.Width
}

// bottom returns the exclusive bottom edge.
func (b Bounds) bottom() int {
	return b.Y + b.Height
}

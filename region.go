package escp

import "math"

// Fixed page geometry for the EPSON LQ-2090II in condensed mode. The core
// does not support any other page size.
const (
	// PageWidth is the number of character columns per page.
	PageWidth = 160
	// PageHeight is the number of character rows per page.
	PageHeight = 51
)

// Region is a bounds-checked rectangle over the page's coordinate space.
// A Region obtained from NewRegion, FullPage, or any of the derivation
// methods always satisfies: width > 0, height > 0, x+width <= PageWidth,
// y+height <= PageHeight. Regions are immutable values.
type Region struct {
	x, y          int
	width, height int
}

// NewRegion creates a region at (x, y) with the given dimensions.
//
// It returns *InvalidDimensionsError if width or height is not positive,
// and *RegionOutOfBoundsError if the region would extend beyond the
// 160x51 page (negative positions and arithmetic overflow included).
func NewRegion(x, y, width, height int) (Region, error) {
	if width <= 0 || height <= 0 {
		return Region{}, &InvalidDimensionsError{Width: width, Height: height}
	}
	if x < 0 || y < 0 ||
		x > math.MaxInt-width || y > math.MaxInt-height ||
		x+width > PageWidth || y+height > PageHeight {
		return Region{}, &RegionOutOfBoundsError{X: x, Y: y, Width: width, Height: height}
	}
	return Region{x: x, y: y, width: width, height: height}, nil
}

// FullPage returns the region covering the entire 160x51 page.
func FullPage() Region {
	return Region{x: 0, y: 0, width: PageWidth, height: PageHeight}
}

// X returns the starting column.
func (r Region) X() int { return r.x }

// Y returns the starting row.
func (r Region) Y() int { return r.y }

// Width returns the width in columns.
func (r Region) Width() int { return r.width }

// Height returns the height in rows.
func (r Region) Height() int { return r.height }

// SplitVertical divides the region into a top part of the given height
// and a bottom part holding the remainder. The parts share x and width;
// there is no gap and no overlap between them. A split consuming the full
// height is rejected because it would leave a zero-height bottom part.
func (r Region) SplitVertical(topHeight int) (top, bottom Region, err error) {
	if topHeight <= 0 || topHeight >= r.height {
		return Region{}, Region{}, &InvalidSplitError{ParentSize: r.height, SplitSize: topHeight}
	}
	top = Region{x: r.x, y: r.y, width: r.width, height: topHeight}
	bottom = Region{x: r.x, y: r.y + topHeight, width: r.width, height: r.height - topHeight}
	return top, bottom, nil
}

// SplitHorizontal divides the region into a left part of the given width
// and a right part holding the remainder, sharing y and height.
func (r Region) SplitHorizontal(leftWidth int) (left, right Region, err error) {
	if leftWidth <= 0 || leftWidth >= r.width {
		return Region{}, Region{}, &InvalidSplitError{ParentSize: r.width, SplitSize: leftWidth}
	}
	left = Region{x: r.x, y: r.y, width: leftWidth, height: r.height}
	right = Region{x: r.x + leftWidth, y: r.y, width: r.width - leftWidth, height: r.height}
	return left, right, nil
}

// WithPadding shrinks the region by the given amounts on each side
// (CSS order: top, right, bottom, left). Padding must be non-negative,
// and the total padding on an axis must be strictly less than that axis's
// size. Equality is rejected so the result always has room for content.
func (r Region) WithPadding(top, right, bottom, left int) (Region, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return Region{}, &InvalidDimensionsError{Width: r.width, Height: r.height}
	}
	horizontal := left + right
	vertical := top + bottom
	if horizontal >= r.width || vertical >= r.height {
		return Region{}, &InvalidDimensionsError{Width: r.width - horizontal, Height: r.height - vertical}
	}
	return Region{
		x:      r.x + left,
		y:      r.y + top,
		width:  r.width - horizontal,
		height: r.height - vertical,
	}, nil
}

package escp

import "strings"

// TextBlock renders pre-split lines verbatim, one per row, with no
// wrapping. Lines past the region's bottom and characters past its right
// edge are truncated.
type TextBlock struct {
	lines []string
}

var _ RegionWidget = (*TextBlock)(nil)

// NewTextBlock creates a TextBlock from explicit lines.
func NewTextBlock(lines []string) *TextBlock {
	return &TextBlock{lines: lines}
}

// TextBlockFromString splits text on newlines into a TextBlock.
func TextBlockFromString(text string) *TextBlock {
	return &TextBlock{lines: strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")}
}

// Render writes each line into the region.
func (t *TextBlock) Render(b *PageBuilder, region Region) {
	for i, line := range t.lines {
		if i >= region.Height() {
			break
		}
		x := region.X()
		limit := region.X() + region.Width()
		for _, r := range line {
			if x >= limit {
				break
			}
			b.WriteAt(x, region.Y()+i, r, StyleNone)
			x++
		}
	}
}

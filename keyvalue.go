package escp

// KeyValueList renders key/value pairs one per row, keys bold, joined by
// a configurable separator (default ": "). Rows past the region's bottom
// and characters past its right edge are truncated.
type KeyValueList struct {
	entries   [][2]string
	separator string
}

var _ RegionWidget = (*KeyValueList)(nil)

// NewKeyValueList creates a list from ordered key/value pairs.
func NewKeyValueList(entries [][2]string) *KeyValueList {
	return &KeyValueList{entries: entries, separator: ": "}
}

// WithSeparator overrides the key/value separator.
func (k *KeyValueList) WithSeparator(sep string) *KeyValueList {
	k.separator = sep
	return k
}

// Render writes the pairs into the region.
func (k *KeyValueList) Render(b *PageBuilder, region Region) {
	limit := region.X() + region.Width()
	for i, entry := range k.entries {
		if i >= region.Height() {
			break
		}
		y := region.Y() + i
		x := region.X()
		x = writeClipped(b, x, y, limit, entry[0], StyleBold)
		x = writeClipped(b, x, y, limit, k.separator, StyleNone)
		writeClipped(b, x, y, limit, entry[1], StyleNone)
	}
}

// writeClipped writes text left to right until limit, returning the next
// free column.
func writeClipped(b *PageBuilder, x, y, limit int, text string, style StyleFlags) int {
	for _, r := range text {
		if x >= limit {
			break
		}
		b.WriteAt(x, y, r, style)
		x++
	}
	return x
}

package escp

// StyleFlags represents text attributes as a bitfield for efficient
// comparison and storage. The printer supports bold and underline; the
// flags combine freely.
type StyleFlags uint8

const (
	// StyleNone represents no text attributes.
	StyleNone StyleFlags = 0
	// StyleBold selects emphasized (bold) printing.
	StyleBold StyleFlags = 1 << 0
	// StyleUnderline selects underlined printing.
	StyleUnderline StyleFlags = 1 << 1
)

// Bold returns true if the bold flag is set.
func (s StyleFlags) Bold() bool {
	return s&StyleBold != 0
}

// Underline returns true if the underline flag is set.
func (s StyleFlags) Underline() bool {
	return s&StyleUnderline != 0
}

// WithBold returns a new StyleFlags with the bold flag set.
func (s StyleFlags) WithBold() StyleFlags {
	return s | StyleBold
}

// WithUnderline returns a new StyleFlags with the underline flag set.
func (s StyleFlags) WithUnderline() StyleFlags {
	return s | StyleUnderline
}

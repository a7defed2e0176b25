package printer

// Font selects a typeface for the ESC k command.
type Font byte

// Typefaces built into the LQ-2090II.
const (
	FontRoman     Font = 0
	FontSansSerif Font = 1
	FontCourier   Font = 2
	FontScript    Font = 3
	FontPrestige  Font = 4
)

// GraphicsMode selects the dot density for bitmap graphics.
type GraphicsMode byte

// Graphics densities and their ESC/P command bytes.
const (
	// SingleDensity is 60 DPI horizontal (ESC K).
	SingleDensity GraphicsMode = 0x4b
	// DoubleDensity is 120 DPI horizontal (ESC L).
	DoubleDensity GraphicsMode = 0x4c
	// HighDensity is 180 DPI horizontal and vertical (ESC Y).
	HighDensity GraphicsMode = 0x59
)

// BoldOn enables bold printing (ESC E).
func (p *Printer) BoldOn() error { return p.Esc([]byte{0x45}) }

// BoldOff disables bold printing (ESC F).
func (p *Printer) BoldOff() error { return p.Esc([]byte{0x46}) }

// UnderlineOn enables underlining (ESC - 1).
func (p *Printer) UnderlineOn() error { return p.Esc([]byte{0x2d, 0x01}) }

// UnderlineOff disables underlining (ESC - 0).
func (p *Printer) UnderlineOff() error { return p.Esc([]byte{0x2d, 0x00}) }

// DoubleStrikeOn enables double-strike printing (ESC G).
func (p *Printer) DoubleStrikeOn() error { return p.Esc([]byte{0x47}) }

// DoubleStrikeOff disables double-strike printing (ESC H).
func (p *Printer) DoubleStrikeOff() error { return p.Esc([]byte{0x48}) }

// SelectPica selects 10 characters per inch (ESC P).
func (p *Printer) SelectPica() error { return p.Esc([]byte{0x50}) }

// SelectElite selects 12 characters per inch (ESC M).
func (p *Printer) SelectElite() error { return p.Esc([]byte{0x4d}) }

// SelectCondensed selects 15 characters per inch (ESC g). Condensed
// pitch is what fits 160 columns on the carriage.
func (p *Printer) SelectCondensed() error { return p.Esc([]byte{0x67}) }

// SelectFont selects a typeface (ESC k n).
func (p *Printer) SelectFont(f Font) error { return p.Esc([]byte{0x6b, byte(f)}) }

// WriteText sends plain text. Non-ASCII runes are replaced with '?';
// the printer's character table only covers ASCII.
func (p *Printer) WriteText(text string) error {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r > 127 {
			out = append(out, '?')
			continue
		}
		out = append(out, byte(r))
	}
	return p.Send(out)
}

// FormFeed ejects the current page (FF).
func (p *Printer) FormFeed() error { return p.Send([]byte{0x0c}) }

// LineFeed advances one line (LF).
func (p *Printer) LineFeed() error { return p.Send([]byte{0x0a}) }

// CarriageReturn returns to the start of the current line (CR).
func (p *Printer) CarriageReturn() error { return p.Send([]byte{0x0d}) }

// SetPageLengthLines sets the page length in lines, 1 to 127 (ESC C n).
func (p *Printer) SetPageLengthLines(lines int) error {
	if lines < 1 || lines > 127 {
		return &InvalidPageLengthError{Value: lines}
	}
	return p.Esc([]byte{0x43, byte(lines)})
}

// SetPageLengthDots sets the page length in 1/360-inch units, 1 to
// 65535 (ESC ( C).
func (p *Printer) SetPageLengthDots(dots int) error {
	if dots < 1 || dots > 0xffff {
		return &InvalidPageLengthError{Value: dots}
	}
	return p.Esc([]byte{0x28, 0x43, 0x02, 0x00, byte(dots), byte(dots >> 8)})
}

// SetLineSpacing sets line spacing in 1/180-inch units (ESC 3 n).
func (p *Printer) SetLineSpacing(dots int) error {
	if dots < 0 || dots > 255 {
		return &RangeError{Param: "line spacing", Value: dots, Min: 0, Max: 255}
	}
	return p.Esc([]byte{0x33, byte(dots)})
}

// SetDefaultLineSpacing restores the default 1/6-inch spacing (ESC 2).
func (p *Printer) SetDefaultLineSpacing() error { return p.Esc([]byte{0x32}) }

// SetLeftMargin sets the left margin in characters (ESC l n).
func (p *Printer) SetLeftMargin(chars int) error {
	if chars < 0 || chars > 255 {
		return &RangeError{Param: "left margin", Value: chars, Min: 0, Max: 255}
	}
	return p.Esc([]byte{0x6c, byte(chars)})
}

// SetRightMargin sets the right margin in characters (ESC Q n).
func (p *Printer) SetRightMargin(chars int) error {
	if chars < 0 || chars > 255 {
		return &RangeError{Param: "right margin", Value: chars, Min: 0, Max: 255}
	}
	return p.Esc([]byte{0x51, byte(chars)})
}

// MicroForward advances paper by units/180 inch, 1 to 255 (ESC J n).
func (p *Printer) MicroForward(units int) error {
	if units == 0 {
		return ErrMicroFeedZero
	}
	if units < 0 || units > 255 {
		return &RangeError{Param: "micro feed", Value: units, Min: 1, Max: 255}
	}
	return p.Esc([]byte{0x4a, byte(units)})
}

// MicroReverse reverses paper by units/180 inch, 1 to 255 (ESC j n).
// The carriage limits reverse travel to roughly 254 units.
func (p *Printer) MicroReverse(units int) error {
	if units == 0 {
		return ErrMicroFeedZero
	}
	if units < 0 || units > 255 {
		return &RangeError{Param: "micro feed", Value: units, Min: 1, Max: 255}
	}
	return p.Esc([]byte{0x6a, byte(units)})
}

// MoveAbsoluteX moves the print head to an absolute position in
// 1/60-inch units from the left margin (ESC $ nL nH).
func (p *Printer) MoveAbsoluteX(position int) error {
	if position < 0 || position > 0xffff {
		return &RangeError{Param: "absolute position", Value: position, Min: 0, Max: 0xffff}
	}
	return p.Esc([]byte{0x24, byte(position), byte(position >> 8)})
}

// MoveRelativeX moves the print head by a signed offset in 1/120-inch
// units (ESC \ nL nH). Negative offsets move left.
func (p *Printer) MoveRelativeX(offset int) error {
	if offset < -0x8000 || offset > 0x7fff {
		return &RangeError{Param: "relative offset", Value: offset, Min: -0x8000, Max: 0x7fff}
	}
	u := uint16(offset)
	return p.Esc([]byte{0x5c, byte(u), byte(u >> 8)})
}

// PrintGraphics sends one line of bitmap graphics (ESC K/L/Y nL nH
// data). Each data byte is a column of 8 vertical dots, least
// significant bit at the top. The declared width must match the data
// length and stay within the configured device maximum.
func (p *Printer) PrintGraphics(mode GraphicsMode, width int, data []byte) error {
	if width > p.maxGraphicsWidth {
		return &GraphicsWidthExceededError{Width: width, MaxWidth: p.maxGraphicsWidth}
	}
	if width < 0 || width != len(data) {
		return &GraphicsWidthMismatchError{Width: width, DataLen: len(data)}
	}

	cmd := make([]byte, 0, 4+len(data))
	cmd = append(cmd, 0x1b, byte(mode), byte(width), byte(width>>8))
	cmd = append(cmd, data...)
	return p.Send(cmd)
}

package escp

// ESC/P command sequences for the EPSON LQ-2090II.
var (
	escReset        = []byte{0x1b, 0x40}       // ESC @ - reset
	siCondensed     = []byte{0x0f}             // SI - condensed mode (160 cols)
	escBoldOn       = []byte{0x1b, 0x45}       // ESC E
	escBoldOff      = []byte{0x1b, 0x46}       // ESC F
	escUnderlineOn  = []byte{0x1b, 0x2d, 0x01} // ESC - 1
	escUnderlineOff = []byte{0x1b, 0x2d, 0x00} // ESC - 0
)

const (
	cr = 0x0d // carriage return
	lf = 0x0a // line feed
	ff = 0x0c // form feed - page separator
)

// escStream builds the output byte stream over a pre-allocated buffer.
type escStream struct {
	buf []byte
}

func newEscStream(capacity int) *escStream {
	return &escStream{buf: make([]byte, 0, capacity)}
}

func (e *escStream) write(b []byte) {
	e.buf = append(e.buf, b...)
}

func (e *escStream) writeByte(b byte) {
	e.buf = append(e.buf, b)
}

// styleState is the two-flag state machine that minimizes style command
// emission: an "on" code is emitted only when a flag turns on, an "off"
// code only when it turns off. Transitions depend solely on cell
// contents, so the output is a pure function of the document.
type styleState struct {
	bold      bool
	underline bool
}

// transition moves the machine to the target style, emitting only the
// codes for flags that actually change.
func (s *styleState) transition(target StyleFlags, out *escStream) {
	if target.Bold() != s.bold {
		if target.Bold() {
			out.write(escBoldOn)
		} else {
			out.write(escBoldOff)
		}
		s.bold = target.Bold()
	}
	if target.Underline() != s.underline {
		if target.Underline() {
			out.write(escUnderlineOn)
		} else {
			out.write(escUnderlineOff)
		}
		s.underline = target.Underline()
	}
}

// reset turns every active flag off. Called after each row terminator so
// no style carries across a row boundary in the emitted stream: every row
// starts from a known-clean style state.
func (s *styleState) reset(out *escStream) {
	if s.bold {
		out.write(escBoldOff)
		s.bold = false
	}
	if s.underline {
		out.write(escUnderlineOff)
		s.underline = false
	}
}

// renderDocument serializes a document: the one-time initialization
// sequence, then per page all 51 rows of 160 cells followed by a form
// feed.
func renderDocument(d Document) []byte {
	// Worst case per row is a style toggle per cell; the estimate below
	// covers typical documents without growing the buffer.
	out := newEscStream(len(escReset) + len(siCondensed) + d.PageCount()*PageHeight*(PageWidth+8))

	out.write(escReset)
	out.write(siCondensed)

	for _, page := range d.pages {
		renderPage(page, out)
		out.writeByte(ff)
	}

	return out.buf
}

func renderPage(p Page, out *escStream) {
	var state styleState
	for y := 0; y < PageHeight; y++ {
		renderRow(p.row(y), &state, out)
		out.writeByte(cr)
		out.writeByte(lf)
		state.reset(out)
	}
}

func renderRow(cells []Cell, state *styleState, out *escStream) {
	for _, cell := range cells {
		state.transition(cell.Style(), out)
		out.writeByte(cell.Char())
	}
}

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBytes(t *testing.T) {
	tests := map[string]struct {
		send func(*Printer) error
		want []byte
	}{
		"bold on":          {send: (*Printer).BoldOn, want: []byte{0x1b, 0x45}},
		"bold off":         {send: (*Printer).BoldOff, want: []byte{0x1b, 0x46}},
		"underline on":     {send: (*Printer).UnderlineOn, want: []byte{0x1b, 0x2d, 0x01}},
		"underline off":    {send: (*Printer).UnderlineOff, want: []byte{0x1b, 0x2d, 0x00}},
		"double strike on": {send: (*Printer).DoubleStrikeOn, want: []byte{0x1b, 0x47}},
		"double strike off": {
			send: (*Printer).DoubleStrikeOff, want: []byte{0x1b, 0x48},
		},
		"pica":      {send: (*Printer).SelectPica, want: []byte{0x1b, 0x50}},
		"elite":     {send: (*Printer).SelectElite, want: []byte{0x1b, 0x4d}},
		"condensed": {send: (*Printer).SelectCondensed, want: []byte{0x1b, 0x67}},
		"font courier": {
			send: func(p *Printer) error { return p.SelectFont(FontCourier) },
			want: []byte{0x1b, 0x6b, 0x02},
		},
		"form feed":       {send: (*Printer).FormFeed, want: []byte{0x0c}},
		"line feed":       {send: (*Printer).LineFeed, want: []byte{0x0a}},
		"carriage return": {send: (*Printer).CarriageReturn, want: []byte{0x0d}},
		"page length lines": {
			send: func(p *Printer) error { return p.SetPageLengthLines(66) },
			want: []byte{0x1b, 0x43, 66},
		},
		"page length dots": {
			send: func(p *Printer) error { return p.SetPageLengthDots(0x0234) },
			want: []byte{0x1b, 0x28, 0x43, 0x02, 0x00, 0x34, 0x02},
		},
		"line spacing": {
			send: func(p *Printer) error { return p.SetLineSpacing(30) },
			want: []byte{0x1b, 0x33, 30},
		},
		"default line spacing": {
			send: (*Printer).SetDefaultLineSpacing,
			want: []byte{0x1b, 0x32},
		},
		"left margin": {
			send: func(p *Printer) error { return p.SetLeftMargin(8) },
			want: []byte{0x1b, 0x6c, 8},
		},
		"right margin": {
			send: func(p *Printer) error { return p.SetRightMargin(152) },
			want: []byte{0x1b, 0x51, 152},
		},
		"micro forward": {
			send: func(p *Printer) error { return p.MicroForward(10) },
			want: []byte{0x1b, 0x4a, 10},
		},
		"micro reverse": {
			send: func(p *Printer) error { return p.MicroReverse(254) },
			want: []byte{0x1b, 0x6a, 254},
		},
		"absolute x": {
			send: func(p *Printer) error { return p.MoveAbsoluteX(0x0180) },
			want: []byte{0x1b, 0x24, 0x80, 0x01},
		},
		"relative x negative": {
			send: func(p *Printer) error { return p.MoveRelativeX(-120) },
			want: []byte{0x1b, 0x5c, 0x88, 0xff},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, out := newTestPrinter(nil)
			require.NoError(t, tt.send(p))
			assert.Equal(t, tt.want, out.Bytes())
		})
	}
}

func TestWriteText_ASCIIOnly(t *testing.T) {
	p, out := newTestPrinter(nil)

	require.NoError(t, p.WriteText("café ✓"))
	assert.Equal(t, []byte("caf? ?"), out.Bytes())
}

func TestMicroFeed_Validation(t *testing.T) {
	p, out := newTestPrinter(nil)

	assert.ErrorIs(t, p.MicroForward(0), ErrMicroFeedZero)
	assert.ErrorIs(t, p.MicroReverse(0), ErrMicroFeedZero)

	var rangeErr *RangeError
	assert.ErrorAs(t, p.MicroForward(256), &rangeErr)
	assert.Empty(t, out.Bytes(), "failed commands must write nothing")
}

func TestSetPageLength_Validation(t *testing.T) {
	p, out := newTestPrinter(nil)

	var invalid *InvalidPageLengthError
	require.ErrorAs(t, p.SetPageLengthLines(0), &invalid)
	assert.Equal(t, 0, invalid.Value)
	assert.ErrorAs(t, p.SetPageLengthLines(128), &invalid)
	assert.ErrorAs(t, p.SetPageLengthDots(0), &invalid)
	assert.Empty(t, out.Bytes())
}

func TestPrintGraphics(t *testing.T) {
	p, out := newTestPrinter(nil)
	data := []byte{0xff, 0x00, 0xff, 0x00}

	require.NoError(t, p.PrintGraphics(SingleDensity, 4, data))
	assert.Equal(t, append([]byte{0x1b, 0x4b, 0x04, 0x00}, data...), out.Bytes())
}

func TestPrintGraphics_Modes(t *testing.T) {
	tests := map[string]struct {
		mode GraphicsMode
		want byte
	}{
		"single density": {mode: SingleDensity, want: 0x4b},
		"double density": {mode: DoubleDensity, want: 0x4c},
		"high density":   {mode: HighDensity, want: 0x59},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, out := newTestPrinter(nil)
			require.NoError(t, p.PrintGraphics(tt.mode, 1, []byte{0xaa}))
			assert.Equal(t, tt.want, out.Bytes()[1])
		})
	}
}

func TestPrintGraphics_Validation(t *testing.T) {
	p, out := newTestPrinter(nil, WithMaxGraphicsWidth(100))

	var exceeded *GraphicsWidthExceededError
	err := p.PrintGraphics(SingleDensity, 200, make([]byte, 200))
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, 200, exceeded.Width)
	assert.Equal(t, 100, exceeded.MaxWidth)

	var mismatch *GraphicsWidthMismatchError
	err = p.PrintGraphics(SingleDensity, 20, make([]byte, 10))
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 20, mismatch.Width)
	assert.Equal(t, 10, mismatch.DataLen)

	assert.Empty(t, out.Bytes())
}

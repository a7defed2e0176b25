package printer

import (
	"io"
	"log/slog"
	"time"
)

// DefaultMaxGraphicsWidth is the widest graphics line the LQ-2090II
// accepts at high density.
const DefaultMaxGraphicsWidth = 1440

// Printer is a bidirectional connection to an ESC/P printer: commands go
// out through the writer, status bytes come back through the reader.
type Printer struct {
	w                io.Writer
	r                io.Reader
	maxGraphicsWidth int
	log              *slog.Logger
}

// Option configures a Printer.
type Option func(*Printer)

// WithMaxGraphicsWidth overrides the graphics width limit used to
// validate PrintGraphics calls.
func WithMaxGraphicsWidth(dots int) Option {
	return func(p *Printer) { p.maxGraphicsWidth = dots }
}

// WithLogger attaches a logger for byte-level debug traces.
func WithLogger(log *slog.Logger) Option {
	return func(p *Printer) { p.log = log }
}

// New creates a Printer over the given transport.
func New(w io.Writer, r io.Reader, opts ...Option) *Printer {
	p := &Printer{
		w:                w,
		r:                r,
		maxGraphicsWidth: DefaultMaxGraphicsWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Send writes raw bytes to the printer, retrying partial writes until
// everything is on the wire.
func (p *Printer) Send(data []byte) error {
	if p.log != nil {
		p.log.Debug("sending to printer", "bytes", len(data))
	}
	return writeAll(p.w, data)
}

// Esc sends an ESC-prefixed command: the 0x1B byte followed by data.
func (p *Printer) Esc(data []byte) error {
	cmd := make([]byte, 0, 1+len(data))
	cmd = append(cmd, 0x1b)
	cmd = append(cmd, data...)
	return p.Send(cmd)
}

// Reset restores the printer's power-on defaults (ESC @).
func (p *Printer) Reset() error {
	return p.Esc([]byte{0x40})
}

// QueryStatus sends a status request (DLE EOT 1) and waits up to timeout
// for the single status byte. It returns *TimeoutError if the printer
// does not answer and ErrDisconnected if the transport reports EOF.
func (p *Printer) QueryStatus(timeout time.Duration) (Status, error) {
	if err := p.Send([]byte{0x10, 0x04, 0x01}); err != nil {
		return Status{}, err
	}

	b, err := readByteTimeout(p.r, timeout)
	if err != nil {
		return Status{}, err
	}

	status := statusFromByte(b)
	if p.log != nil {
		p.log.Debug("printer status", "byte", b,
			"online", status.Online, "paper_out", status.PaperOut, "error", status.Error)
	}
	return status, nil
}

// MaxGraphicsWidth returns the configured graphics width limit in dots.
func (p *Printer) MaxGraphicsWidth() int {
	return p.maxGraphicsWidth
}

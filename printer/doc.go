// Package printer drives an ESC/P dot-matrix printer over a
// caller-supplied byte transport. It consumes the rendered byte stream
// produced by the layout engine and adds the device-side concerns the
// renderer deliberately avoids: reliable writes, status queries, and the
// wider ESC/P command catalog (pitch, fonts, margins, positioning,
// graphics).
//
// A Printer is built over any io.Writer/io.Reader pair, so tests run
// against in-memory transports and production runs against the lp
// device opened with OpenDevice.
package printer

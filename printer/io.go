package printer

import (
	"io"
	"os"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// flusher is implemented by transports that buffer writes.
type flusher interface {
	Flush() error
}

// writeAll writes data completely, retrying partial writes and EINTR.
// A zero-byte write with no error is treated as a dead transport. If the
// writer buffers, it is flushed once everything is written.
func writeAll(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return errors.Wrap(err, "write to printer")
		}
		if n == 0 {
			return errors.Wrap(io.ErrShortWrite, "write to printer")
		}
		data = data[n:]
	}

	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.Wrap(err, "flush to printer")
		}
	}
	return nil
}

// pollInterval is the sleep between reads while waiting on a
// non-blocking device.
const pollInterval = 10 * time.Millisecond

// readByteTimeout reads one byte, polling through EAGAIN on non-blocking
// transports until the timeout expires. EOF means the printer
// disconnected; an expired deadline yields *TimeoutError.
func readByteTimeout(r io.Reader, timeout time.Duration) (byte, error) {
	var buf [1]byte
	deadline := time.Now().Add(timeout)

	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			return buf[0], nil
		}

		switch {
		case errors.Is(err, io.EOF):
			return 0, ErrDisconnected
		case errors.Is(err, syscall.EINTR):
			continue
		case err == nil, errors.Is(err, syscall.EAGAIN), errors.Is(err, os.ErrDeadlineExceeded):
			// Nothing buffered yet; poll until the deadline.
			if time.Now().After(deadline) {
				return 0, &TimeoutError{Timeout: timeout}
			}
			time.Sleep(pollInterval)
		default:
			return 0, errors.Wrap(err, "read from printer")
		}
	}
}

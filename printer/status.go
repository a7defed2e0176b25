package printer

// Status byte layout for the DLE EOT 1 response.
const (
	statusOffline  = 1 << 3
	statusPaperOut = 1 << 5
	statusError    = 1 << 6
)

// Status is the decoded operational state of the printer.
type Status struct {
	// Online is true when the printer is selected and accepting data.
	Online bool
	// PaperOut is true when no paper is loaded.
	PaperOut bool
	// Error is true when the printer reports an error condition.
	Error bool
}

// statusFromByte decodes a DLE EOT 1 status byte. Bit 3 set means
// offline, bit 5 paper out, bit 6 error.
func statusFromByte(b byte) Status {
	return Status{
		Online:   b&statusOffline == 0,
		PaperOut: b&statusPaperOut != 0,
		Error:    b&statusError != 0,
	}
}

// Ready reports whether the printer can accept a job right now.
func (s Status) Ready() bool {
	return s.Online && !s.PaperOut && !s.Error
}

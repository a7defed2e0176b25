package printer

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for conditions with no useful payload.
var (
	// ErrDisconnected is returned when the device reports EOF mid-read,
	// which on an lp device means the printer went away.
	ErrDisconnected = errors.New("printer disconnected")

	// ErrMicroFeedZero is returned for a zero-unit micro feed. The
	// command byte range is 1 to 255; zero would be a silent no-op the
	// caller almost certainly did not intend.
	ErrMicroFeedZero = errors.New("micro feed units must be between 1 and 255")
)

// DeviceNotFoundError indicates the device node does not exist.
type DeviceNotFoundError struct {
	Path string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("printer device %s not found: check that the printer is connected and the lp module is loaded", e.Path)
}

// PermissionError indicates the process may not open the device node.
type PermissionError struct {
	Path string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied opening %s: add your user to the lp group or run with elevated privileges", e.Path)
}

// DeviceBusyError indicates another process holds the advisory lock on
// the device.
type DeviceBusyError struct {
	Path string
}

func (e *DeviceBusyError) Error() string {
	return fmt.Sprintf("printer device %s is in use by another process", e.Path)
}

// TimeoutError indicates the printer did not answer a status query
// within the allowed duration.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("printer did not respond within %s", e.Timeout)
}

// GraphicsWidthExceededError indicates a graphics command wider than the
// configured device maximum.
type GraphicsWidthExceededError struct {
	Width    int
	MaxWidth int
}

func (e *GraphicsWidthExceededError) Error() string {
	return fmt.Sprintf("graphics width %d exceeds device maximum %d", e.Width, e.MaxWidth)
}

// GraphicsWidthMismatchError indicates a graphics command whose declared
// width disagrees with the data length.
type GraphicsWidthMismatchError struct {
	Width   int
	DataLen int
}

func (e *GraphicsWidthMismatchError) Error() string {
	return fmt.Sprintf("graphics width %d does not match data length %d", e.Width, e.DataLen)
}

// InvalidPageLengthError indicates a page length outside the command's
// accepted range.
type InvalidPageLengthError struct {
	Value int
}

func (e *InvalidPageLengthError) Error() string {
	return fmt.Sprintf("invalid page length %d", e.Value)
}

// RangeError indicates a command parameter outside its single-byte
// range.
type RangeError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Param, e.Min, e.Max, e.Value)
}

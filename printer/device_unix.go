//go:build unix

package printer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Device is an open printer device node with an advisory lock held for
// the lifetime of the handle. It satisfies io.Reader and io.Writer, so
// it plugs straight into New.
type Device struct {
	f    *os.File
	lock *flock.Flock
}

// OpenDevice opens a printer device node such as /dev/usb/lp0.
//
// The device is opened non-blocking so status reads can poll instead of
// stalling, and an advisory flock is taken so two processes do not
// interleave jobs on the same printer. ENOENT and EACCES map to
// *DeviceNotFoundError and *PermissionError.
func OpenDevice(path string) (*Device, error) {
	lock := flock.New(lockPath(path))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock printer device %s", path)
	}
	if !locked {
		return nil, &DeviceBusyError{Path: path}
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		_ = lock.Unlock()
		switch {
		case errors.Is(err, unix.ENOENT):
			return nil, &DeviceNotFoundError{Path: path}
		case errors.Is(err, unix.EACCES):
			return nil, &PermissionError{Path: path}
		default:
			return nil, errors.Wrapf(err, "open printer device %s", path)
		}
	}

	return &Device{
		f:    os.NewFile(uintptr(fd), path),
		lock: lock,
	}, nil
}

// lockPath derives the advisory lock file location for a device node.
// /dev is not writable by the lp group, so the lock lives in the temp
// directory under a name derived from the node path.
func lockPath(device string) string {
	name := strings.ReplaceAll(strings.TrimPrefix(device, "/"), "/", "-")
	return filepath.Join(os.TempDir(), "escp-"+name+".lock")
}

// Read reads status bytes from the device. With O_NONBLOCK set it
// returns EAGAIN when nothing is buffered, which readByteTimeout turns
// into polling.
func (d *Device) Read(p []byte) (int, error) {
	return d.f.Read(p)
}

// Write writes command bytes to the device.
func (d *Device) Write(p []byte) (int, error) {
	return d.f.Write(p)
}

// Path returns the device node path.
func (d *Device) Path() string {
	return d.f.Name()
}

// Close releases the advisory lock and closes the device.
func (d *Device) Close() error {
	unlockErr := d.lock.Unlock()
	closeErr := d.f.Close()
	if closeErr != nil {
		return errors.Wrapf(closeErr, "close printer device %s", d.f.Name())
	}
	if unlockErr != nil {
		return errors.Wrapf(unlockErr, "unlock printer device %s", d.f.Name())
	}
	return nil
}

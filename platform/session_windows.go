//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modmsi                  = windows.NewLazySystemDLL("msi.dll")
	procMsiGetPropertyW     = modmsi.NewProc("MsiGetPropertyW")
	procMsiSetPropertyW     = modmsi.NewProc("MsiSetPropertyW")
	procMsiCreateRecord     = modmsi.NewProc("MsiCreateRecord")
	procMsiRecordSetStringW = modmsi.NewProc("MsiRecordSetStringW")
	procMsiProcessMessage   = modmsi.NewProc("MsiProcessMessage")
	procMsiCloseHandle      = modmsi.NewProc("MsiCloseHandle")
)

const errorMoreData = 234

// MsiSession wraps an MSIHANDLE passed to a custom action.
type MsiSession struct {
	handle uint32
}

// OpenSession wraps the handle the installer passed to a DLL custom action.
// It returns nil for a zero handle so callers fall back to local output.
func OpenSession(handle uint32) Session {
	if handle == 0 {
		return nil
	}
	return &MsiSession{handle: handle}
}

// Property reads an installer property. Missing properties read as "".
func (s *MsiSession) Property(name string) (string, error) {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return "", err
	}

	size := uint32(256)
	for {
		buf := make([]uint16, size)
		length := size
		r, _, _ := procMsiGetPropertyW.Call(
			uintptr(s.handle),
			uintptr(unsafe.Pointer(n)),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(unsafe.Pointer(&length)),
		)
		switch r {
		case 0:
			return windows.UTF16ToString(buf[:length]), nil
		case errorMoreData:
			// length excludes the terminating null
			size = length + 1
		default:
			return "", fmt.Errorf("MsiGetProperty %s: %w", name, windows.Errno(r))
		}
	}
}

// SetProperty writes an installer property.
func (s *MsiSession) SetProperty(name, value string) error {
	n, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	v, err := windows.UTF16PtrFromString(value)
	if err != nil {
		return err
	}

	r, _, _ := procMsiSetPropertyW.Call(uintptr(s.handle), uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(v)))
	if r != 0 {
		return fmt.Errorf("MsiSetProperty %s: %w", name, windows.Errno(r))
	}
	return nil
}

// Message sends text to the installer log through a one-field record.
func (s *MsiSession) Message(kind MessageKind, text string) error {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return err
	}

	record, _, _ := procMsiCreateRecord.Call(1)
	if record == 0 {
		return fmt.Errorf("MsiCreateRecord failed")
	}
	defer procMsiCloseHandle.Call(record)

	if r, _, _ := procMsiRecordSetStringW.Call(record, 0, uintptr(unsafe.Pointer(t))); r != 0 {
		return fmt.Errorf("MsiRecordSetString: %w", windows.Errno(r))
	}

	// MsiProcessMessage returns an int; -1 is an error, 0 means no action taken.
	r, _, _ := procMsiProcessMessage.Call(uintptr(s.handle), uintptr(kind), record)
	if int32(r) < 0 {
		return fmt.Errorf("MsiProcessMessage returned %d", int32(r))
	}
	return nil
}

//go:build windows

package platform

import (
	"errors"
	"strings"

	"golang.org/x/sys/windows"
)

// ErrorMessage returns the system description of err's Win32 error code,
// without the trailing line break. It returns "Unknown error" when the code
// has no system text.
func ErrorMessage(err error) string {
	if err == nil {
		return "Unknown error"
	}

	var errno windows.Errno
	if !errors.As(err, &errno) {
		return err.Error()
	}

	buf := make([]uint16, 512)
	n, ferr := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		uint32(errno),
		0,
		buf,
		nil,
	)
	if ferr != nil || n == 0 {
		return "Unknown error"
	}
	return strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n")
}

// ErrorCode returns the Win32 error code carried by err, or 0.
func ErrorCode(err error) uint32 {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}

// DebugOutput sends a line to the debugger via OutputDebugStringW.
func DebugOutput(line string) {
	p, err := windows.UTF16PtrFromString(line + "\n")
	if err != nil {
		return
	}
	windows.OutputDebugString(p)
}

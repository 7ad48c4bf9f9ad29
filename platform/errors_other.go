//go:build !windows

package platform

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrorMessage returns a human-readable description of err, or
// "Unknown error" when there is none.
func ErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}

// ErrorCode returns the errno carried by err, or 0.
func ErrorCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}

// DebugOutput writes a line to stderr, the closest thing to a debugger channel.
func DebugOutput(line string) {
	fmt.Fprintln(os.Stderr, line)
}

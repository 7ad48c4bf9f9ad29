//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// FileAttributes returns the protective attributes of the file at path.
func FileAttributes(path string) (Attributes, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Attributes{}, fmt.Errorf("encode path: %w", err)
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return Attributes{}, err
	}

	return Attributes{
		ReadOnly: attrs&windows.FILE_ATTRIBUTE_READONLY != 0,
		Hidden:   attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0,
		System:   attrs&windows.FILE_ATTRIBUTE_SYSTEM != 0,
	}, nil
}

// SetNormalAttributes clears every attribute of the file at path.
// Also used to probe whether a file is held open by another process.
func SetNormalAttributes(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encode path: %w", err)
	}
	return windows.SetFileAttributes(p, windows.FILE_ATTRIBUTE_NORMAL)
}

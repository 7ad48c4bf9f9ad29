//go:build windows

package platform

import (
	"fmt"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modcomdlg32              = windows.NewLazySystemDLL("comdlg32.dll")
	procGetOpenFileNameW     = modcomdlg32.NewProc("GetOpenFileNameW")
	procCommDlgExtendedError = modcomdlg32.NewProc("CommDlgExtendedError")
)

const (
	ofnPathMustExist = 0x00000800
	ofnFileMustExist = 0x00001000
	ofnNoChangeDir   = 0x00000008
	ofnExplorer      = 0x00080000
)

type openFileName struct {
	StructSize    uint32
	Owner         uintptr
	Instance      uintptr
	Filter        *uint16
	CustomFilter  *uint16
	MaxCustFilter uint32
	FilterIndex   uint32
	File          *uint16
	MaxFile       uint32
	FileTitle     *uint16
	MaxFileTitle  uint32
	InitialDir    *uint16
	Title         *uint16
	Flags         uint32
	FileOffset    uint16
	FileExtension uint16
	DefExt        *uint16
	CustData      uintptr
	Hook          uintptr
	TemplateName  *uint16
	Reserved      uintptr
	ReservedDW    uint32
	FlagsEx       uint32
}

// OpenFileDialog shows the native open-file dialog. ok is false when the
// user cancelled.
func OpenFileDialog(d FileDialog) (path string, ok bool, err error) {
	// The filter list embeds NULs, which UTF16FromString rejects.
	filter := utf16.Encode([]rune(d.filterSpec()))
	file := make([]uint16, windows.MAX_LONG_PATH)

	ofn := openFileName{
		Filter:      &filter[0],
		FilterIndex: 1,
		File:        &file[0],
		MaxFile:     uint32(len(file)),
		Flags:       ofnPathMustExist | ofnFileMustExist | ofnNoChangeDir | ofnExplorer,
	}
	ofn.StructSize = uint32(unsafe.Sizeof(ofn))

	if d.InitialDir != "" {
		if ofn.InitialDir, err = windows.UTF16PtrFromString(d.InitialDir); err != nil {
			return "", false, err
		}
	}
	if d.Title != "" {
		if ofn.Title, err = windows.UTF16PtrFromString(d.Title); err != nil {
			return "", false, err
		}
	}

	r, _, _ := procGetOpenFileNameW.Call(uintptr(unsafe.Pointer(&ofn)))
	if r == 0 {
		code, _, _ := procCommDlgExtendedError.Call()
		if code == 0 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("GetOpenFileName failed (CDERR 0x%04X)", code)
	}

	return windows.UTF16ToString(file), true, nil
}

//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// WindowsPath returns the Windows directory.
// Example: C:\Windows
func WindowsPath() string {
	if dir, err := windows.GetWindowsDirectory(); err == nil && dir != "" {
		return dir
	}
	return envOr("SystemRoot", `C:\Windows`)
}

// SystemDrivePath returns the root of the system drive.
// Example: C:\
func SystemDrivePath() string {
	return envOr("SystemDrive", "C:") + `\`
}

// ProgramFilesPath returns the path to the Program Files folder.
// Example: C:\Program Files
func ProgramFilesPath() string {
	return envOr("ProgramFiles", `C:\Program Files`)
}

// ProgramDataPath returns the path to the common program data folder.
// Example: C:\ProgramData
func ProgramDataPath() string {
	if path, err := windows.KnownFolderPath(windows.FOLDERID_ProgramData, 0); err == nil {
		return path
	}
	return envOr("ProgramData", `C:\ProgramData`)
}

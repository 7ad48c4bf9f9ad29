//go:build !windows

package platform

import "path/filepath"

// The layout below mirrors the Windows folders under a single root so the
// default targets stay meaningful in tests. LOGONAPP_ROOT relocates it.

func hostRoot() string {
	return envOr("LOGONAPP_ROOT", "/")
}

// WindowsPath returns the emulated Windows directory.
func WindowsPath() string {
	return filepath.Join(hostRoot(), "Windows")
}

// SystemDrivePath returns the emulated system drive root.
func SystemDrivePath() string {
	return hostRoot()
}

// ProgramFilesPath returns the emulated Program Files folder.
func ProgramFilesPath() string {
	return filepath.Join(hostRoot(), "Program Files")
}

// ProgramDataPath returns the emulated ProgramData folder.
func ProgramDataPath() string {
	return filepath.Join(hostRoot(), "ProgramData")
}

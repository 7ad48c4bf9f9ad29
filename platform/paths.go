package platform

import (
	"os"
	"path/filepath"
)

// TempPath returns the temporary directory of the current user.
func TempPath() string {
	return os.TempDir()
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// System32Path returns the Windows system directory.
// Example: C:\Windows\System32
func System32Path() string {
	return filepath.Join(WindowsPath(), "System32")
}

// DriversEtcPath returns the directory holding the hosts file.
// Example: C:\Windows\System32\drivers\etc
func DriversEtcPath() string {
	return filepath.Join(System32Path(), "drivers", "etc")
}

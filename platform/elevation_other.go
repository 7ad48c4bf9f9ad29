//go:build !windows

package platform

import "os"

// IsElevated checks if the current process is running with root privileges.
func IsElevated() bool {
	return os.Geteuid() == 0
}

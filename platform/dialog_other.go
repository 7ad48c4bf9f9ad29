//go:build !windows

package platform

// OpenFileDialog is not supported on non-Windows platforms.
func OpenFileDialog(d FileDialog) (string, bool, error) {
	return "", false, ErrUnsupported
}

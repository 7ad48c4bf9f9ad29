//go:build !windows

package platform

// InstalledProducts is not supported on non-Windows platforms.
func InstalledProducts() ([]Product, error) {
	return nil, ErrUnsupported
}

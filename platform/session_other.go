//go:build !windows

package platform

// OpenSession always returns nil: there is no installer host outside Windows.
func OpenSession(handle uint32) Session {
	return nil
}

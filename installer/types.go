package installer

// Status is the code a custom action returns to the installer host.
type Status uint32

const (
	// StatusSuccess is ERROR_SUCCESS.
	StatusSuccess Status = 0

	// StatusFailure is ERROR_INSTALL_FAILURE. The installer rolls back on it.
	StatusFailure Status = 1603
)

// StatusOf maps a boolean outcome to a Status.
func StatusOf(ok bool) Status {
	if ok {
		return StatusSuccess
	}
	return StatusFailure
}

// String returns the Win32 constant name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "ERROR_SUCCESS"
	case StatusFailure:
		return "ERROR_INSTALL_FAILURE"
	default:
		return "UNKNOWN_STATUS"
	}
}

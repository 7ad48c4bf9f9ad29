package platform

import "errors"

// ErrNotExist is returned when a registry key or value does not exist.
var ErrNotExist = errors.New("registry key or value does not exist")

// ErrUnsupported is returned by operations that only exist on Windows.
var ErrUnsupported = errors.New("operation not supported on this platform")

// RootKey identifies one of the predefined registry hives.
type RootKey int

const (
	ClassesRoot RootKey = iota
	CurrentUser
	LocalMachine
	Users
	CurrentConfig
)

var rootKeyNames = map[RootKey]string{
	ClassesRoot:   "HKEY_CLASSES_ROOT",
	CurrentUser:   "HKEY_CURRENT_USER",
	LocalMachine:  "HKEY_LOCAL_MACHINE",
	Users:         "HKEY_USERS",
	CurrentConfig: "HKEY_CURRENT_CONFIG",
}

// String returns the full hive name, e.g. "HKEY_LOCAL_MACHINE".
func (r RootKey) String() string {
	if name, ok := rootKeyNames[r]; ok {
		return name
	}
	return "UNKNOWN_KEY"
}

// Registry is the subset of registry access used by the cleanup strategies.
// Paths are relative to the given root and use backslash separators.
//
// Implementations return ErrNotExist (possibly wrapped) when the key or
// value is absent. Every call opens and closes its own key handle.
type Registry interface {
	// SubKeyNames lists the immediate children of the key.
	SubKeyNames(root RootKey, path string) ([]string, error)

	// StringValue reads a REG_SZ or REG_EXPAND_SZ value.
	StringValue(root RootKey, path, name string) (string, error)

	// DeleteTree removes the key and all of its descendants.
	DeleteTree(root RootKey, path string) error
}

// JoinKey joins registry path elements with backslashes, skipping empty ones.
func JoinKey(elem ...string) string {
	var out string
	for _, e := range elem {
		if e == "" {
			continue
		}
		if out == "" {
			out = e
			continue
		}
		out += `\` + e
	}
	return out
}

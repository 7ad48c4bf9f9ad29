package platform

// Attributes describes the protective attributes of a file.
type Attributes struct {
	ReadOnly bool
	Hidden   bool
	System   bool
}

// Protected reports whether any attribute blocks deletion.
func (a Attributes) Protected() bool {
	return a.ReadOnly || a.Hidden || a.System
}

package platform

import "strings"

// FileFilter is one entry of an open-file dialog's type list.
type FileFilter struct {
	Name    string // e.g. "Configuration Files (*.cfg)"
	Pattern string // e.g. "*.cfg"
}

// FileDialog configures an open-file dialog.
type FileDialog struct {
	Title      string
	InitialDir string
	Filters    []FileFilter
}

// filterSpec encodes filters as the NUL-separated, double-NUL-terminated
// list expected by the common dialogs.
func (d FileDialog) filterSpec() string {
	var b strings.Builder
	for _, f := range d.Filters {
		b.WriteString(f.Name)
		b.WriteByte(0)
		b.WriteString(f.Pattern)
		b.WriteByte(0)
	}
	b.WriteByte(0)
	return b.String()
}

package configfile

import (
	"fmt"

	"github.com/crafted-tech/logonapp/platform"
)

// Properties set when the user picks a configuration file.
const (
	PropertyConfigPath   = "CONFIGFILEPATH"
	PropertyConfigPathUI = "CONFIGFILEPATH_UI"
)

// Chooser asks the user for a file.
type Chooser interface {
	Choose(d platform.FileDialog) (path string, ok bool, err error)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(d platform.FileDialog) (string, bool, error)

func (f ChooserFunc) Choose(d platform.FileDialog) (string, bool, error) { return f(d) }

// DialogChooser shows the system open-file dialog.
var DialogChooser Chooser = ChooserFunc(platform.OpenFileDialog)

// PropertyStore receives the chosen path. platform.Session satisfies it.
type PropertyStore interface {
	SetProperty(name, value string) error
}

// Dialog returns the dialog used to pick a configuration file.
func Dialog(seedDir string) platform.FileDialog {
	return platform.FileDialog{
		Title:      "Select configuration file",
		InitialDir: seedDir,
		Filters: []platform.FileFilter{
			{Name: "Configuration Files (*.cfg)", Pattern: "*" + Extension},
			{Name: "All Files (*.*)", Pattern: "*.*"},
		},
	}
}

// Choose lets the user pick a configuration file and stores the choice in
// both path properties. Cancelling leaves the properties untouched and is
// not an error.
func (h *Handler) Choose(chooser Chooser, props PropertyStore, seedDir string) error {
	path, ok, err := chooser.Choose(Dialog(seedDir))
	if err != nil {
		return fmt.Errorf("open file dialog: %w", err)
	}
	if !ok {
		h.log.Info("File selection canceled or failed.")
		return nil
	}

	h.log.Info("Selected file: %s", path)
	for _, name := range []string{PropertyConfigPath, PropertyConfigPathUI} {
		if err := props.SetProperty(name, path); err != nil {
			return fmt.Errorf("set property %s: %w", name, err)
		}
		h.log.Info("Set MSI property %s successfully.", name)
	}
	return nil
}

package configfile

import (
	"path/filepath"

	"github.com/crafted-tech/logonapp/platform"
)

const (
	DefaultFileName = "wlconfig.cfg"
	Extension       = ".cfg"
)

// Locations holds every path the handler reads or writes.
type Locations struct {
	FileName string

	// ProgramFilesDir receives placed and restored install configuration.
	ProgramFilesDir string
	// ProgramDataDir receives restored local configuration.
	ProgramDataDir string

	LegacyInstallConfig string
	LegacyLocalConfig   string

	StagingDir        string
	StagedInstallName string
	StagedLocalName   string
}

// DefaultLocations derives the locations from the known folders of this host.
func DefaultLocations() Locations {
	return Locations{
		FileName:            DefaultFileName,
		ProgramFilesDir:     filepath.Join(platform.ProgramFilesPath(), "WatchGuard", "Logon App", "Resources"),
		ProgramDataDir:      filepath.Join(platform.ProgramDataPath(), "WatchGuard", "Logon App"),
		LegacyInstallConfig: filepath.Join(platform.System32Path(), DefaultFileName),
		LegacyLocalConfig:   filepath.Join(platform.DriversEtcPath(), DefaultFileName),
		StagingDir:          filepath.Join(platform.TempPath(), "WatchGuardLogonAppConfig"),
		StagedInstallName:   "InstallConfig.cfg",
		StagedLocalName:     "LocalConfig.cfg",
	}
}

func (l Locations) fileName() string {
	if l.FileName == "" {
		return DefaultFileName
	}
	return l.FileName
}

// InstallConfigPath is where Place writes and Restore puts the install
// configuration.
func (l Locations) InstallConfigPath() string {
	return filepath.Join(l.ProgramFilesDir, l.fileName())
}

// LocalConfigPath is where Restore puts the local configuration.
func (l Locations) LocalConfigPath() string {
	return filepath.Join(l.ProgramDataDir, l.fileName())
}

// StagedInstallPath is the staged copy of the legacy install configuration.
func (l Locations) StagedInstallPath() string {
	return filepath.Join(l.StagingDir, l.StagedInstallName)
}

// StagedLocalPath is the staged copy of the legacy local configuration.
func (l Locations) StagedLocalPath() string {
	return filepath.Join(l.StagingDir, l.StagedLocalName)
}

package customaction

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/crafted-tech/logonapp/cleanup"
	"github.com/crafted-tech/logonapp/configfile"
	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
)

// Session properties read by the actions.
const (
	PropertyCustomActionData = "CustomActionData"
	PropertyOriginalDatabase = "OriginalDatabase"
)

const installLogDateFormat = "02/01/2006 15:04:05"

// Actions carries the dependencies of every custom action.
type Actions struct {
	Targets         cleanup.Targets
	Locations       configfile.Locations
	Registry        platform.Registry
	Chooser         configfile.Chooser
	InstallLogPath  string
	FallbackLogPath string
	Now             func() time.Time
}

// New returns actions wired to the host system.
func New() *Actions {
	return &Actions{
		Targets:         cleanup.DefaultTargets(),
		Locations:       configfile.DefaultLocations(),
		Registry:        platform.SystemRegistry(),
		Chooser:         configfile.DialogChooser,
		InstallLogPath:  filepath.Join(platform.SystemDrivePath(), "installation_test.txt"),
		FallbackLogPath: installer.DefaultFallbackLogPath(),
		Now:             time.Now,
	}
}

func (a *Actions) logger(s platform.Session) *installer.Logger {
	return installer.NewSessionLogger(s, a.FallbackLogPath)
}

func (a *Actions) factory() *cleanup.Factory {
	return cleanup.NewFactory(a.Targets, a.Registry)
}

// guard turns a panic in an action into a logged failure.
func guard(log *installer.Logger, action string, status *installer.Status) {
	if r := recover(); r != nil {
		log.Error("Unknown exception in %s: %v", action, r)
		*status = installer.StatusFailure
	}
}

// runPlan builds and executes a cleanup plan.
func (a *Actions) runPlan(plan cleanup.Plan, log *installer.Logger) bool {
	m, err := a.factory().Build(plan, log)
	if err != nil {
		log.Error("Could not build cleanup plan %s: %v", plan, err)
		return false
	}
	return m.ExecuteAll()
}

// CreateInstallationLog removes v3 files and records the install time.
func (a *Actions) CreateInstallationLog(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "CreateInstallationLog", &status)

	log.Info("Starting installation log file creation...")
	if !a.runPlan(cleanup.PlanLegacyFiles, log) {
		log.Warn("V3 files cleanup reported issues.")
	}

	line := "Installation performed on: " + a.Now().Format(installLogDateFormat) + "\n"
	if err := installer.WriteFile(a.InstallLogPath, []byte(line)); err != nil {
		log.Error("Error creating installation log file: %v", err)
		return installer.StatusFailure
	}

	log.Info("Installation log file created successfully at %s", a.InstallLogPath)
	return installer.StatusSuccess
}

// DeleteLegacyConfig removes the legacy configuration file from System32.
func (a *Actions) DeleteLegacyConfig(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "DeleteLegacyConfig", &status)

	path := a.Targets.LegacyConfig
	log.Info("Trying to delete file %s...", path)

	if !a.factory().LegacyConfig().Execute(log) {
		log.Error("Error deleting the file %s.", path)
		return installer.StatusFailure
	}
	log.Info("File %s deleted successfully.", path)
	return installer.StatusSuccess
}

// ExecuteFullCleanup runs the v3, v4 and registry cleanups in turn. Every
// cleanup runs even when an earlier one fails.
func (a *Actions) ExecuteFullCleanup(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "ExecuteFullCleanup", &status)

	phases := []struct {
		msg  string
		plan cleanup.Plan
	}{
		{"Executing V3 files cleanup...", cleanup.PlanLegacyFiles},
		{"Executing V4 files cleanup...", cleanup.PlanDirectories},
		{"Executing registry cleanup...", cleanup.PlanRegistry},
	}

	success := true
	for _, p := range phases {
		log.Info("%s", p.msg)
		if !a.runPlan(p.plan, log) {
			success = false
		}
	}
	return installer.StatusOf(success)
}

// ExecuteV3Cleanup removes the v3 files.
func (a *Actions) ExecuteV3Cleanup(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "ExecuteV3Cleanup", &status)

	log.Info("Executing V3 files cleanup...")
	return installer.StatusOf(a.runPlan(cleanup.PlanLegacyFiles, log))
}

// ExecuteV4Cleanup removes the v4 folders.
func (a *Actions) ExecuteV4Cleanup(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "ExecuteV4Cleanup", &status)

	log.Info("Executing V4 files cleanup...")
	return installer.StatusOf(a.runPlan(cleanup.PlanDirectories, log))
}

// ExecuteAuthPointCleanup removes AuthPoint registry leftovers.
func (a *Actions) ExecuteAuthPointCleanup(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "ExecuteAuthPointCleanup", &status)

	log.Info("Executing AuthPoint registry cleanup...")
	return installer.StatusOf(a.runPlan(cleanup.PlanAuthPointRegistry, log))
}

// CopyConfigFileToDestination places the configuration named by the
// deferred custom action data.
func (a *Actions) CopyConfigFileToDestination(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "CopyConfigFileToDestination", &status)

	log.Info("Starting config file copy operation...")

	data, err := s.Property(PropertyCustomActionData)
	if err != nil {
		log.Error("Could not read %s: %v", PropertyCustomActionData, err)
		return installer.StatusFailure
	}
	params := installer.ParseCustomActionData(data)
	logParams(log, params)

	src := configfile.ResolveSource(params)
	if err := configfile.NewHandler(a.Locations, log).Place(src); err != nil {
		if errors.Is(err, configfile.ErrNoSource) {
			log.Warn("No valid configuration source provided.")
		} else {
			log.Error("Could not place configuration from %s: %v", src.Kind, err)
		}
		return installer.StatusFailure
	}
	return installer.StatusSuccess
}

func logParams(log *installer.Logger, params map[string]string) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msg := "Parameters:"
	for _, k := range keys {
		msg += fmt.Sprintf("\n\tKey: %s, Value: %s", k, params[k])
	}
	log.Info("%s", msg)
}

// OpenFileChooser lets the user pick a configuration file, starting in the
// folder the package was opened from.
func (a *Actions) OpenFileChooser(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "OpenFileChooser", &status)

	log.Info("Starting OpenFileChooser operation...")

	var seed string
	if db, err := s.Property(PropertyOriginalDatabase); err == nil && db != "" {
		seed = filepath.Dir(db)
	}

	if err := configfile.NewHandler(a.Locations, log).Choose(a.Chooser, s, seed); err != nil {
		log.Error("File selection failed: %v", err)
		return installer.StatusFailure
	}
	return installer.StatusSuccess
}

// StageConfigFiles copies legacy configuration to the staging folder.
func (a *Actions) StageConfigFiles(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "StageConfigFiles", &status)

	log.Info("Starting to copy configuration files to temporary location...")
	r := configfile.NewHandler(a.Locations, log).Stage()
	return installer.StatusOf(r.Err() == nil)
}

// RestoreConfigFiles moves staged configuration to its new locations.
func (a *Actions) RestoreConfigFiles(s platform.Session) (status installer.Status) {
	log := a.logger(s)
	defer guard(log, "RestoreConfigFiles", &status)

	log.Info("Starting to restore configuration files from temporary location...")
	r := configfile.NewHandler(a.Locations, log).Restore()
	return installer.StatusOf(r.Err() == nil)
}

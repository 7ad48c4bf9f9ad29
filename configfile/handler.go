package configfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/crafted-tech/logonapp/installer"
)

// ErrNoSource is returned by Place when no configuration source was given.
var ErrNoSource = errors.New("no valid configuration source provided")

// Handler performs configuration file operations against a set of
// locations, logging each step.
type Handler struct {
	loc Locations
	log *installer.Logger
}

// NewHandler returns a handler over loc.
func NewHandler(loc Locations, log *installer.Logger) *Handler {
	return &Handler{loc: loc, log: log}
}

// Locations returns the handler's locations.
func (h *Handler) Locations() Locations { return h.loc }

// Place writes the configuration described by src to the install
// configuration path, replacing any existing file.
func (h *Handler) Place(src Source) error {
	dst := h.loc.InstallConfigPath()

	switch src.Kind {
	case SourceContent:
		h.log.Info("Creating %s file...", h.loc.fileName())
		if err := h.ensureDir(h.loc.ProgramFilesDir); err != nil {
			return err
		}
		if err := installer.WriteFile(dst, []byte(src.Value)); err != nil {
			return fmt.Errorf("create %s: %w", dst, err)
		}
		h.log.Info("%s created successfully.", h.loc.fileName())
		return nil

	case SourcePath, SourceCurrentFolder:
		from, err := NormalizeSourcePath(src.Value, h.loc.fileName())
		if err != nil {
			return err
		}
		if from != src.Value {
			h.log.Info("Updating CONFIG_PATH. From: %s To: %s", src.Value, from)
		}
		if err := h.ensureDir(h.loc.ProgramFilesDir); err != nil {
			return err
		}
		h.log.Info("Copying configuration file to destination. Source: %s Destination: %s", from, dst)
		if err := installer.CopyFile(from, dst); err != nil {
			return fmt.Errorf("copy %s: %w", from, err)
		}
		h.log.Info("%s copied successfully.", h.loc.fileName())
		return nil

	default:
		return ErrNoSource
	}
}

func (h *Handler) ensureDir(dir string) error {
	created, err := installer.EnsureDir(dir)
	if err != nil {
		return err
	}
	if created {
		h.log.Info("Creating directory: %s", dir)
	}
	return nil
}

// MigrationResult records what Stage or Restore did with each file.
type MigrationResult struct {
	Copied  []string
	Skipped []string
	Failed  []string
}

// Err returns an error naming the failed files, or nil.
func (r MigrationResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("could not copy %d configuration file(s): %v", len(r.Failed), r.Failed)
}

// Idle reports that no source file was present.
func (r MigrationResult) Idle() bool {
	return len(r.Copied) == 0 && len(r.Failed) == 0
}

func (r *MigrationResult) copy(h *Handler, from, to, what string) {
	if !installer.FileExists(from) {
		h.log.Info("%s configuration file doesn't exist: %s", what, from)
		r.Skipped = append(r.Skipped, from)
		return
	}
	h.log.Info("Copying %s to %s", from, to)
	if err := installer.CopyFile(from, to); err != nil {
		h.log.Error("Failed to copy %s config file: %v", what, err)
		r.Failed = append(r.Failed, from)
		return
	}
	h.log.Info("%s configuration file copied successfully.", what)
	r.Copied = append(r.Copied, from)
}

// Stage copies the legacy configuration files to the staging folder so
// that they survive legacy cleanup.
func (h *Handler) Stage() MigrationResult {
	var r MigrationResult
	if err := h.ensureDir(h.loc.StagingDir); err != nil {
		h.log.Error("Could not create staging directory %s: %v", h.loc.StagingDir, err)
		r.Failed = append(r.Failed, h.loc.LegacyInstallConfig, h.loc.LegacyLocalConfig)
		return r
	}

	r.copy(h, h.loc.LegacyInstallConfig, h.loc.StagedInstallPath(), "System32")
	r.copy(h, h.loc.LegacyLocalConfig, h.loc.StagedLocalPath(), "Drivers/etc")
	h.logOutcome(r, "copied to temporary location", "copy")
	return r
}

// Restore moves staged configuration to the current install locations and
// removes the staging folder.
func (h *Handler) Restore() MigrationResult {
	var r MigrationResult
	for _, dir := range []string{h.loc.ProgramFilesDir, h.loc.ProgramDataDir} {
		if err := h.ensureDir(dir); err != nil {
			h.log.Warn("Could not create directory %s: %v", dir, err)
		}
	}

	r.copy(h, h.loc.StagedInstallPath(), h.loc.InstallConfigPath(), "Installation")
	r.copy(h, h.loc.StagedLocalPath(), h.loc.LocalConfigPath(), "Local")

	if installer.DirExists(h.loc.StagingDir) {
		h.log.Info("Cleaning up temporary directory: %s", h.loc.StagingDir)
		if err := os.RemoveAll(h.loc.StagingDir); err != nil {
			h.log.Warn("Failed to clean up temporary directory: %v", err)
		} else {
			h.log.Info("Temporary directory cleaned up successfully.")
		}
	}

	h.logOutcome(r, "restored from temporary location", "restore")
	return r
}

func (h *Handler) logOutcome(r MigrationResult, done, verb string) {
	switch {
	case len(r.Failed) > 0:
		h.log.Error("Some configuration files could not be %s: %v", done, r.Failed)
	case r.Idle():
		h.log.Warn("No configuration files were found to %s.", verb)
	default:
		h.log.Info("Configuration files successfully %s.", done)
	}
}

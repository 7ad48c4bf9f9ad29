package cleanup

import (
	"errors"
	"os"

	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
)

// FileStrategy deletes a fixed list of files.
type FileStrategy struct {
	name  string
	label string
	paths []string
}

// NewFileStrategy returns a strategy deleting paths. A non-empty label
// frames the run with "=== Deleting <label> ===" banners.
func NewFileStrategy(name, label string, paths ...string) *FileStrategy {
	return &FileStrategy{name: name, label: label, paths: append([]string(nil), paths...)}
}

func (s *FileStrategy) Name() string { return s.name }

// Paths returns the configured files.
func (s *FileStrategy) Paths() []string { return append([]string(nil), s.paths...) }

func (s *FileStrategy) Execute(log *installer.Logger) bool {
	if s.label != "" {
		log.Info("=== Deleting %s - Started ===", s.label)
	}

	success := true
	for _, path := range s.paths {
		if s.label != "" {
			log.Info("- Processing: %s", path)
		}
		if !removeFile(path, log) {
			success = false
		}
	}

	if s.label != "" {
		log.Info("=== Deleting %s - Finished! ===", s.label)
	}
	return success
}

// removeFile deletes one file, clearing read-only, hidden and system
// attributes first. A missing file is a success.
func removeFile(path string, log *installer.Logger) bool {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("  File %s not found.", path)
		return true
	}
	if err != nil {
		log.Error("  Could not access %s: %v", path, err)
		return false
	}
	if info.IsDir() {
		log.Error("  Failed to remove: %s is a directory.", path)
		return false
	}

	attrs, err := platform.FileAttributes(path)
	if err != nil {
		log.Error("  Could not get attributes for: %s.", path)
		return false
	}
	if attrs.Protected() {
		if err := platform.SetNormalAttributes(path); err != nil {
			log.Error("  Could not modify attributes for: %s.", path)
			return false
		}
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("  File %s not found.", path)
			return true
		}
		log.Error("  Failed to remove: %s. - %v", path, err)
		return false
	}

	log.Info("  File %s successfully removed.", path)
	return true
}

package cleanup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
)

// DirectoryTarget is a folder to remove. Force removes the whole tree;
// otherwise the folder is removed only when it is already empty.
type DirectoryTarget struct {
	Path  string
	Force bool
}

// DirectoryStrategy removes a fixed list of folders.
//
// Product-owned folders are force-removed. Vendor folders shared with other
// products are conditional: a populated one is left in place, its contents
// are logged, and the strategy still reports success.
type DirectoryStrategy struct {
	name    string
	label   string
	targets []DirectoryTarget
}

// NewDirectoryStrategy returns a strategy processing targets in order.
func NewDirectoryStrategy(name, label string, targets ...DirectoryTarget) *DirectoryStrategy {
	return &DirectoryStrategy{name: name, label: label, targets: append([]DirectoryTarget(nil), targets...)}
}

func (s *DirectoryStrategy) Name() string { return s.name }

// Targets returns the configured folders.
func (s *DirectoryStrategy) Targets() []DirectoryTarget {
	return append([]DirectoryTarget(nil), s.targets...)
}

func (s *DirectoryStrategy) Execute(log *installer.Logger) bool {
	if s.label != "" {
		log.Info("=== Deleting %s - Started ===", s.label)
	}

	success := true
	for _, t := range s.targets {
		if t.Force {
			log.Info("- Removing %s folder and its contents...", t.Path)
		} else {
			log.Info("- Removing %s folder...", t.Path)
		}
		if !removeDirectory(t.Path, t.Force, log) {
			success = false
		}
	}

	if s.label != "" {
		log.Info("=== Deleting %s - Finished! ===", s.label)
	}
	return success
}

func removeDirectory(path string, force bool, log *installer.Logger) bool {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Info("  Directory already deleted (not found): %s", path)
		return true
	} else if err != nil {
		log.Error("  Could not access directory: %s - Error: %v", path, err)
		return false
	}

	if !force {
		entries, err := os.ReadDir(path)
		if err != nil {
			log.Error("  Could not list directory: %s - Error: %v", path, err)
			return false
		}
		if len(entries) > 0 {
			log.Warn("  The %s folder contains other files or sub-folders.", path)
			log.Info("  Listing remaining content:")
			for _, e := range entries {
				log.Info("    - %s", e.Name())
			}
			log.Warn("  The %s folder will not be removed to preserve the data above.", path)
			return true
		}
		if err := os.Remove(path); err != nil {
			log.Error("  Failed to remove directory: %s - Error: %v", path, err)
			return false
		}
		log.Info("Directory successfully removed: %s (1 items deleted)", path)
		return true
	}

	count := countEntries(path)
	if err := os.RemoveAll(path); err != nil {
		log.Error("  Failed to remove directory: %s - Error: %v", path, err)
		logLockedFiles(path, log)
		return false
	}

	log.Info("Directory successfully removed: %s (%d items deleted)", path, count)
	return true
}

// countEntries counts the folder itself and everything below it.
func countEntries(root string) int {
	count := 0
	_ = filepath.WalkDir(root, func(_ string, _ fs.DirEntry, err error) error {
		if err == nil {
			count++
		}
		return nil
	})
	return count
}

// logLockedFiles flags files whose attributes cannot be reset, which on
// Windows usually means another process holds them open.
func logLockedFiles(root string, log *installer.Logger) {
	log.Info("  Attempting to identify problematic files...")

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("  - Unable to access: %s", path)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := platform.SetNormalAttributes(path); err != nil {
			log.Warn("  - File possibly in use: %s", path)
		}
		return nil
	})
	if err != nil {
		log.Info("  - Unable to analyze directory contents.")
	}
}

package cleanup

import (
	"errors"

	"github.com/google/uuid"

	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
)

// EntryKind tells where a matching registry entry was found.
type EntryKind int

const (
	// EntryStandard is a key under one of the standard search paths.
	EntryStandard EntryKind = iota
	// EntryProduct is a packed product code key under the products path.
	EntryProduct
)

func (k EntryKind) String() string {
	if k == EntryProduct {
		return "product"
	}
	return "standard"
}

// RegistryEntry is a key whose display name matched the search patterns.
type RegistryEntry struct {
	Path        string
	DisplayName string
	PackedCode  string
	ProductCode uuid.UUID // uuid.Nil unless PackedCode decodes
	Kind        EntryKind
}

// SearchConfig describes where RegistrySearchStrategy looks.
type SearchConfig struct {
	Root          platform.RootKey
	StandardPaths []string
	ProductsPath  string
	Patterns      Matcher
}

const (
	valueDisplayName = "DisplayName"
	valueProductName = "ProductName"
	keyInstallProps  = "InstallProperties"
)

// RegistrySearchStrategy finds registry entries left behind by earlier
// AuthPoint and Logon App installs and deletes them.
type RegistrySearchStrategy struct {
	name string
	reg  platform.Registry
	cfg  SearchConfig
}

// NewRegistrySearchStrategy returns a search strategy over cfg.
func NewRegistrySearchStrategy(name string, reg platform.Registry, cfg SearchConfig) *RegistrySearchStrategy {
	cfg.StandardPaths = append([]string(nil), cfg.StandardPaths...)
	cfg.Patterns = append(Matcher(nil), cfg.Patterns...)
	return &RegistrySearchStrategy{name: name, reg: reg, cfg: cfg}
}

func (s *RegistrySearchStrategy) Name() string { return s.name }

// Config returns a copy of the search configuration.
func (s *RegistrySearchStrategy) Config() SearchConfig {
	cfg := s.cfg
	cfg.StandardPaths = append([]string(nil), s.cfg.StandardPaths...)
	cfg.Patterns = append(Matcher(nil), s.cfg.Patterns...)
	return cfg
}

func (s *RegistrySearchStrategy) Execute(log *installer.Logger) bool {
	log.Info("=== Searching AuthPoint Registry Entries - Started ===")

	entries := s.Find(log)
	if len(entries) == 0 {
		log.Info("No AuthPoint registry entries found.")
		log.Info("=== Searching AuthPoint Registry Entries - Finished! ===")
		return true
	}

	log.Info("Found %d AuthPoint registry entries.", len(entries))
	success := true
	for _, e := range entries {
		key := RegistryKey{Root: s.cfg.Root, Path: e.Path}
		log.Info("- Deleting %s entry: %s (%s)", e.Kind, key, e.DisplayName)

		found, err := deleteKey(s.reg, key)
		switch {
		case err != nil:
			log.Warn("  Failed to delete registry entry: %s - Error: %s", key, platform.ErrorMessage(err))
			success = false
		case !found:
			log.Info("  Entry already removed: %s", key)
		default:
			log.Info("  Entry successfully deleted: %s", key)
		}
	}

	log.Info("=== Searching AuthPoint Registry Entries - Finished! ===")
	return success
}

// Find collects every matching entry without deleting anything. Standard
// path matches come first, in depth-first order, followed by product
// matches.
func (s *RegistrySearchStrategy) Find(log *installer.Logger) []RegistryEntry {
	var entries []RegistryEntry
	for _, path := range s.cfg.StandardPaths {
		log.Trace("Searching %s\\%s", s.cfg.Root, path)
		entries = s.walk(path, entries, log)
	}
	if s.cfg.ProductsPath != "" {
		log.Trace("Searching %s\\%s", s.cfg.Root, s.cfg.ProductsPath)
		entries = append(entries, s.products(log)...)
	}
	return entries
}

// walk visits path and all of its descendants depth-first. A key that
// cannot be enumerated is treated as a leaf.
func (s *RegistrySearchStrategy) walk(path string, entries []RegistryEntry, log *installer.Logger) []RegistryEntry {
	if name, err := s.reg.StringValue(s.cfg.Root, path, valueDisplayName); err == nil && s.cfg.Patterns.Match(name) {
		log.Info("  Match: %s\\%s (%s)", s.cfg.Root, path, name)
		entries = append(entries, RegistryEntry{Path: path, DisplayName: name, Kind: EntryStandard})
	}

	children, err := s.reg.SubKeyNames(s.cfg.Root, path)
	if err != nil {
		if !errors.Is(err, platform.ErrNotExist) {
			log.Trace("  Could not enumerate %s\\%s: %v", s.cfg.Root, path, err)
		}
		return entries
	}
	for _, child := range children {
		entries = s.walk(platform.JoinKey(path, child), entries, log)
	}
	return entries
}

func (s *RegistrySearchStrategy) products(log *installer.Logger) []RegistryEntry {
	children, err := s.reg.SubKeyNames(s.cfg.Root, s.cfg.ProductsPath)
	if err != nil {
		log.Trace("  Could not enumerate %s\\%s: %v", s.cfg.Root, s.cfg.ProductsPath, err)
		return nil
	}

	var entries []RegistryEntry
	for _, child := range children {
		path := platform.JoinKey(s.cfg.ProductsPath, child)

		name, err := s.reg.StringValue(s.cfg.Root, path, valueProductName)
		if err != nil {
			name, err = s.reg.StringValue(s.cfg.Root, platform.JoinKey(path, keyInstallProps), valueDisplayName)
		}
		if err != nil || !s.cfg.Patterns.Match(name) {
			continue
		}

		e := RegistryEntry{Path: path, DisplayName: name, PackedCode: child, Kind: EntryProduct}
		if code, err := UnpackProductCode(child); err == nil {
			e.ProductCode = code
			log.Info("  Match: %s\\%s (%s, product %s)", s.cfg.Root, path, name, FormatGUID(code))
		} else {
			log.Info("  Match: %s\\%s (%s)", s.cfg.Root, path, name)
		}
		entries = append(entries, e)
	}
	return entries
}

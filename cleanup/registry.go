package cleanup

import (
	"errors"

	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
)

// RegistryKey addresses a key under one of the predefined hives.
type RegistryKey struct {
	Root platform.RootKey
	Path string
}

// String returns the key in "HKEY_LOCAL_MACHINE\path" form.
func (k RegistryKey) String() string {
	return k.Root.String() + `\` + k.Path
}

// RegistryKeysStrategy deletes a fixed list of registry trees.
type RegistryKeysStrategy struct {
	name string
	reg  platform.Registry
	keys []RegistryKey
}

// NewRegistryKeysStrategy returns a strategy deleting keys in order.
func NewRegistryKeysStrategy(name string, reg platform.Registry, keys ...RegistryKey) *RegistryKeysStrategy {
	return &RegistryKeysStrategy{name: name, reg: reg, keys: append([]RegistryKey(nil), keys...)}
}

func (s *RegistryKeysStrategy) Name() string { return s.name }

// Keys returns the configured keys.
func (s *RegistryKeysStrategy) Keys() []RegistryKey {
	return append([]RegistryKey(nil), s.keys...)
}

func (s *RegistryKeysStrategy) Execute(log *installer.Logger) bool {
	log.Info("=== Deleting Registry Keys - Started ===")

	success := true
	for _, k := range s.keys {
		log.Info("- Processing: %s", k)
		found, err := deleteKey(s.reg, k)
		switch {
		case err != nil:
			log.Error("  Failed to delete key: %s - Error: %s", k, platform.ErrorMessage(err))
			success = false
		case !found:
			log.Info("  Key not found: %s", k)
		default:
			log.Info("  Key successfully deleted: %s", k)
		}
	}

	log.Info("=== Deleting Registry Keys - Finished! ===")
	return success
}

// deleteKey removes the key tree. An absent key is reported as not found
// rather than as an error.
func deleteKey(reg platform.Registry, k RegistryKey) (found bool, err error) {
	err = reg.DeleteTree(k.Root, k.Path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, platform.ErrNotExist):
		return false, nil
	default:
		return true, err
	}
}

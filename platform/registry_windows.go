//go:build windows

package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var (
	modadvapi32       = windows.NewLazySystemDLL("advapi32.dll")
	procRegDeleteTree = modadvapi32.NewProc("RegDeleteTreeW")
)

var rootKeys = map[RootKey]registry.Key{
	ClassesRoot:   registry.CLASSES_ROOT,
	CurrentUser:   registry.CURRENT_USER,
	LocalMachine:  registry.LOCAL_MACHINE,
	Users:         registry.USERS,
	CurrentConfig: registry.CURRENT_CONFIG,
}

type systemRegistry struct{}

// SystemRegistry returns a Registry backed by the Windows registry.
func SystemRegistry() Registry {
	return systemRegistry{}
}

func (systemRegistry) SubKeyNames(root RootKey, path string) ([]string, error) {
	hive, err := hiveFor(root)
	if err != nil {
		return nil, err
	}

	key, err := registry.OpenKey(hive, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, translateRegistryError(err)
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, translateRegistryError(err)
	}
	return names, nil
}

func (systemRegistry) StringValue(root RootKey, path, name string) (string, error) {
	hive, err := hiveFor(root)
	if err != nil {
		return "", err
	}

	key, err := registry.OpenKey(hive, path, registry.QUERY_VALUE)
	if err != nil {
		return "", translateRegistryError(err)
	}
	defer key.Close()

	// GetStringValue rejects anything that is not REG_SZ or REG_EXPAND_SZ.
	value, _, err := key.GetStringValue(name)
	if err != nil {
		return "", translateRegistryError(err)
	}
	return value, nil
}

func (systemRegistry) DeleteTree(root RootKey, path string) error {
	hive, err := hiveFor(root)
	if err != nil {
		return err
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encode key path: %w", err)
	}

	// RegDeleteTreeW returns the status code directly instead of via GetLastError.
	r, _, _ := procRegDeleteTree.Call(uintptr(hive), uintptr(unsafe.Pointer(p)))
	if r != 0 {
		return translateRegistryError(windows.Errno(r))
	}
	return nil
}

func hiveFor(root RootKey) (registry.Key, error) {
	hive, ok := rootKeys[root]
	if !ok {
		return 0, fmt.Errorf("unknown registry root %d", int(root))
	}
	return hive, nil
}

func translateRegistryError(err error) error {
	if errors.Is(err, registry.ErrNotExist) || errors.Is(err, windows.ERROR_PATH_NOT_FOUND) {
		return fmt.Errorf("%w: %w", ErrNotExist, err)
	}
	return err
}

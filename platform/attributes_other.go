//go:build !windows

package platform

import "os"

// FileAttributes returns the protective attributes of the file at path.
// Only the read-only bit has a portable equivalent (missing owner write).
func FileAttributes(path string) (Attributes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{ReadOnly: info.Mode().Perm()&0200 == 0}, nil
}

// SetNormalAttributes restores owner write permission on the file at path.
func SetNormalAttributes(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode().Perm()|0200)
}

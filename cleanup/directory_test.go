package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crafted-tech/logonapp/installer"
)

func TestDirectoryStrategyForceRemovesTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Logon App")
	writeFile(t, filepath.Join(root, "Resources", "wlconfig.cfg"))
	writeFile(t, filepath.Join(root, "LogonApp.dll"))

	log := installer.Discard()
	s := NewDirectoryStrategy("dirs", "V4 Files", DirectoryTarget{Path: root, Force: true})

	assert.True(t, s.Execute(log))
	assert.NoDirExists(t, root)
	// root, Resources, two files
	assert.Contains(t, log.Content(), "(4 items deleted)")
}

func TestDirectoryStrategyPreservesPopulatedVendorFolder(t *testing.T) {
	vendor := filepath.Join(t.TempDir(), "WatchGuard")
	writeFile(t, filepath.Join(vendor, "Other Product", "data.bin"))

	log := installer.Discard()
	s := NewDirectoryStrategy("dirs", "", DirectoryTarget{Path: vendor})

	assert.True(t, s.Execute(log))
	assert.DirExists(t, vendor)
	assert.Contains(t, log.Content(), "- Other Product")
	assert.Contains(t, log.Content(), "will not be removed")
}

func TestDirectoryStrategyRemovesEmptyVendorFolder(t *testing.T) {
	vendor := filepath.Join(t.TempDir(), "WatchGuard")
	require.NoError(t, os.Mkdir(vendor, 0755))

	assert.True(t, NewDirectoryStrategy("dirs", "", DirectoryTarget{Path: vendor}).Execute(installer.Discard()))
	assert.NoDirExists(t, vendor)
}

func TestDirectoryStrategyOrderEmptiesVendorFolder(t *testing.T) {
	vendor := filepath.Join(t.TempDir(), "WatchGuard")
	product := filepath.Join(vendor, "Logon App")
	writeFile(t, filepath.Join(product, "app.exe"))

	s := NewDirectoryStrategy("dirs", "",
		DirectoryTarget{Path: product, Force: true},
		DirectoryTarget{Path: vendor},
	)

	assert.True(t, s.Execute(installer.Discard()))
	assert.NoDirExists(t, vendor)
}

func TestDirectoryStrategyAbsentSucceeds(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	log := installer.Discard()

	s := NewDirectoryStrategy("dirs", "",
		DirectoryTarget{Path: missing, Force: true},
		DirectoryTarget{Path: missing},
	)

	assert.True(t, s.Execute(log))
	assert.Contains(t, log.Content(), "already deleted")
}

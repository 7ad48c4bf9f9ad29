package platformtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crafted-tech/logonapp/platform"
)

func TestRegistryIsCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	reg.SetString(platform.LocalMachine, `SOFTWARE\WatchGuard\Logon App`, "DisplayName", "Logon App")

	v, err := reg.StringValue(platform.LocalMachine, `software\watchguard\LOGON APP`, "displayname")
	require.NoError(t, err)
	assert.Equal(t, "Logon App", v)

	names, err := reg.SubKeyNames(platform.LocalMachine, `Software\WatchGuard`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Logon App"}, names)
}

func TestRegistryDeleteTree(t *testing.T) {
	reg := NewRegistry()
	reg.CreateKey(platform.LocalMachine, `A\B\C`)

	require.NoError(t, reg.DeleteTree(platform.LocalMachine, `A\B`))
	assert.False(t, reg.Exists(platform.LocalMachine, `A\B\C`))
	assert.True(t, reg.Exists(platform.LocalMachine, `A`))
	assert.Equal(t, []string{`HKEY_LOCAL_MACHINE\A\B`}, reg.Deleted)

	err := reg.DeleteTree(platform.LocalMachine, `A\B`)
	assert.ErrorIs(t, err, platform.ErrNotExist)
}

func TestRegistryMissingKey(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.SubKeyNames(platform.ClassesRoot, `CLSID`)
	assert.ErrorIs(t, err, platform.ErrNotExist)

	reg.CreateKey(platform.ClassesRoot, `CLSID`)
	_, err = reg.StringValue(platform.ClassesRoot, `CLSID`, "missing")
	assert.ErrorIs(t, err, platform.ErrNotExist)
}

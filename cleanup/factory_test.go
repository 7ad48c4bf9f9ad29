package cleanup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
	"github.com/crafted-tech/logonapp/platform/platformtest"
)

func TestFactoryBuildPlans(t *testing.T) {
	f := NewFactory(DefaultTargets(), platformtest.NewRegistry())

	tests := []struct {
		plan Plan
		want []string
	}{
		{PlanLegacyFiles, []string{NameLegacyFiles}},
		{PlanDirectories, []string{NameDirectories}},
		{PlanRegistry, []string{NameRegistry}},
		{PlanAuthPointRegistry, []string{NameAuthPointRegistry}},
		{PlanFull, []string{NameLegacyFiles, NameDirectories, NameRegistry}},
		{PlanUninstall, []string{NameLegacyFiles, NameDirectories, NameRegistry, NameAuthPointRegistry}},
	}
	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			m, err := f.Build(tt.plan, installer.Discard())
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Names())
		})
	}
}

func TestFactoryUnknownPlan(t *testing.T) {
	_, err := NewFactory(Targets{}, nil).Build("everything", installer.Discard())
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestParsePlan(t *testing.T) {
	for _, p := range Plans() {
		got, err := ParsePlan(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePlan(" Full ")
	require.NoError(t, err)
	assert.Equal(t, PlanFull, got)

	_, err = ParsePlan("v5")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestFactoryLegacyConfig(t *testing.T) {
	targets := DefaultTargets()
	s := NewFactory(targets, nil).LegacyConfig()

	assert.Equal(t, NameSingleFile, s.Name())
	assert.Equal(t, []string{targets.LegacyConfig}, s.Paths())
	assert.Equal(t, "Wlconfig.cfg", filepath.Base(targets.LegacyConfig))
}

func TestDefaultTargets(t *testing.T) {
	targets := DefaultTargets()

	require.Len(t, targets.LegacyFiles, 6)
	assert.Equal(t, filepath.Join(platform.System32Path(), "WLcacert.pem"), targets.LegacyFiles[0])
	assert.Equal(t, filepath.Join(platform.DriversEtcPath(), "wlconfigbkp.cfg"), targets.LegacyFiles[5])

	require.Len(t, targets.Directories, 4)
	assert.True(t, targets.Directories[0].Force)
	assert.True(t, targets.Directories[1].Force)
	assert.False(t, targets.Directories[2].Force)
	assert.False(t, targets.Directories[3].Force)
	assert.Equal(t, "Logon App", filepath.Base(targets.Directories[0].Path))
	assert.Equal(t, "WatchGuard", filepath.Base(targets.Directories[3].Path))

	assert.Equal(t, platform.LocalMachine, targets.Search.Root)
	assert.Len(t, targets.Search.StandardPaths, 3)
	assert.Equal(t, DefaultPatterns, targets.Search.Patterns)
}

func TestCredentialProviderKeys(t *testing.T) {
	keys := CredentialProviderKeys()
	require.Len(t, keys, 12)

	assert.Equal(t, RegistryKey{Root: platform.LocalMachine, Path: `SOFTWARE\WatchGuard\Logon App`}, keys[0])
	assert.Equal(t, RegistryKey{
		Root: platform.ClassesRoot,
		Path: `CLSID\{BCB72349-6C97-4E3F-94B5-6EA045F85CA5}`,
	}, keys[3])
	assert.Equal(t, RegistryKey{
		Root: platform.LocalMachine,
		Path: `SOFTWARE\Microsoft\Windows\CurrentVersion\Authentication\Credential Providers\{22AD5268-00F7-427E-A4F7-87C7CF161BA7}`,
	}, keys[4])
	for _, k := range keys {
		assert.NotContains(t, k.Path, `\\`)
	}
}

func TestFullPlanIsIdempotent(t *testing.T) {
	root := t.TempDir()
	reg := platformtest.NewRegistry()
	targets := Targets{
		LegacyFiles: []string{filepath.Join(root, "System32", "WLlibcurl.dll")},
		Directories: []DirectoryTarget{
			{Path: filepath.Join(root, "WatchGuard", "Logon App"), Force: true},
			{Path: filepath.Join(root, "WatchGuard")},
		},
		RegistryKeys: CredentialProviderKeys(),
	}
	writeFile(t, targets.LegacyFiles[0])
	writeFile(t, filepath.Join(targets.Directories[0].Path, "Resources", "wlconfig.cfg"))
	for _, k := range targets.RegistryKeys {
		reg.CreateKey(k.Root, k.Path)
	}

	f := NewFactory(targets, reg)
	for run := 0; run < 2; run++ {
		log := installer.Discard()
		m, err := f.Build(PlanFull, log)
		require.NoError(t, err)
		assert.True(t, m.ExecuteAll(), "run %d", run)
		assert.NotContains(t, log.Content(), "[ERROR]", "run %d", run)
	}
	assert.NoDirExists(t, filepath.Join(root, "WatchGuard"))
	assert.Len(t, reg.Deleted, len(targets.RegistryKeys))
}

package cleanup

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/crafted-tech/logonapp/platform"
)

// Credential provider class IDs registered by the Logon App.
var (
	ApplicationCLSID     = uuid.MustParse("BCB72349-6C97-4E3F-94B5-6EA045F85CA5")
	FaceRecognitionCLSID = uuid.MustParse("22AD5268-00F7-427E-A4F7-87C7CF161BA7")
	PINCLSID             = uuid.MustParse("5D76DE6C-7F65-4431-89AC-2D43EBE72298")
	FingerprintCLSID     = uuid.MustParse("B88420D8-BAB2-4451-A2D3-A2F99AF9854A")
	SmartcardCLSID       = uuid.MustParse("2BFD34AC-10D7-4C70-94F5-3F7EA9025B0E")
)

const (
	productKey          = `SOFTWARE\WatchGuard\Logon App`
	authenticationKey   = `SOFTWARE\Microsoft\Windows\CurrentVersion\Authentication`
	providersKey        = authenticationKey + `\Credential Providers`
	providerFiltersKey  = authenticationKey + `\Credential Provider Filters`
	classesCLSIDKey     = `SOFTWARE\Classes\CLSID`
	rootCLSIDKey        = `CLSID`
	installerUserData   = `SOFTWARE\Microsoft\Windows\CurrentVersion\Installer\UserData`
	uninstallKey        = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
	installerManaged    = `SOFTWARE\Microsoft\Windows\CurrentVersion\Installer\Managed`
	installerProducts   = `Software\Classes\Installer\Products`
	legacyConfigName    = "wlconfig.cfg"
	legacyConfigBackup  = "wlconfigbkp.cfg"
	legacyConfigCleanup = "Wlconfig.cfg"
)

// DefaultPatterns are the display name fragments of AuthPoint products.
var DefaultPatterns = Matcher{"AuthPoint", "Logon App", "LogonApp", "WatchGuard"}

// Targets is the data every strategy works from. It is built once and
// treated as read-only.
type Targets struct {
	LegacyFiles  []string
	LegacyConfig string
	Directories  []DirectoryTarget
	RegistryKeys []RegistryKey
	Search       SearchConfig
}

// DefaultTargets derives the targets from the known folders of this host.
func DefaultTargets() Targets {
	system32 := platform.System32Path()
	etc := platform.DriversEtcPath()
	programData := filepath.Join(platform.ProgramDataPath(), "WatchGuard")
	programFiles := filepath.Join(platform.ProgramFilesPath(), "WatchGuard")

	return Targets{
		LegacyFiles: []string{
			filepath.Join(system32, "WLcacert.pem"),
			filepath.Join(system32, legacyConfigName),
			filepath.Join(system32, "WLlibcurl.dll"),
			filepath.Join(system32, "WLCredProv.dll"),
			filepath.Join(etc, legacyConfigName),
			filepath.Join(etc, legacyConfigBackup),
		},
		LegacyConfig: filepath.Join(system32, legacyConfigCleanup),
		Directories: []DirectoryTarget{
			{Path: filepath.Join(programData, "Logon App"), Force: true},
			{Path: filepath.Join(programFiles, "Logon App"), Force: true},
			{Path: programData},
			{Path: programFiles},
		},
		RegistryKeys: CredentialProviderKeys(),
		Search: SearchConfig{
			Root:          platform.LocalMachine,
			StandardPaths: []string{installerUserData, uninstallKey, installerManaged},
			ProductsPath:  installerProducts,
			Patterns:      DefaultPatterns,
		},
	}
}

// CredentialProviderKeys lists the keys registering the credential
// providers, the provider filter and the product settings.
func CredentialProviderKeys() []RegistryKey {
	app := FormatGUID(ApplicationCLSID)
	keys := []RegistryKey{
		{Root: platform.LocalMachine, Path: productKey},
		{Root: platform.LocalMachine, Path: platform.JoinKey(providerFiltersKey, app)},
		{Root: platform.LocalMachine, Path: platform.JoinKey(providersKey, app)},
		{Root: platform.ClassesRoot, Path: platform.JoinKey(rootCLSIDKey, app)},
	}
	for _, id := range []uuid.UUID{FaceRecognitionCLSID, PINCLSID, FingerprintCLSID, SmartcardCLSID} {
		clsid := FormatGUID(id)
		keys = append(keys,
			RegistryKey{Root: platform.LocalMachine, Path: platform.JoinKey(providersKey, clsid)},
			RegistryKey{Root: platform.LocalMachine, Path: platform.JoinKey(classesCLSIDKey, clsid)},
		)
	}
	return keys
}

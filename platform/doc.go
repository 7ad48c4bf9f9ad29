// Package platform provides the operating system substrate used by the
// Logon App installer actions.
//
// The package targets Windows. Other platforms get portable fallbacks so the
// cleanup and configuration packages can be built and tested anywhere, but
// only the Windows build talks to the real registry, the Windows Installer
// session, or the common dialogs.
//
// # Features
//
//   - Registry: enumerate subkeys, read string values, delete whole subtrees
//   - File attributes: read and reset read-only/hidden/system attributes
//   - Known folders: System32, ProgramData, Program Files, temp
//   - Elevation: check for administrator privileges
//   - Session: Windows Installer property access and message routing (msi.dll)
//   - File dialog: native open-file picker (comdlg32.dll)
//   - Products: inventory of Windows Installer products (COM automation)
//
// # Example Usage
//
//	reg := platform.SystemRegistry()
//	names, err := reg.SubKeyNames(platform.LocalMachine, `SOFTWARE\WatchGuard`)
//	if errors.Is(err, platform.ErrNotExist) {
//	    // nothing to clean
//	}
//
//	if err := reg.DeleteTree(platform.LocalMachine, `SOFTWARE\WatchGuard\Logon App`); err != nil {
//	    log.Printf("delete failed: %s", platform.ErrorMessage(err))
//	}
package platform

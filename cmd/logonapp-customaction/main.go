//go:build windows

// Command logonapp-customaction builds the custom action DLL loaded by the
// Logon App installer:
//
//	go build -buildmode=c-shared -o LogonAppCustomAction.dll ./cmd/logonapp-customaction
//
// Every export takes the MSIHANDLE of the running install and returns a
// Win32 status code.
package main

import "C"

import (
	"github.com/crafted-tech/logonapp/customaction"
	"github.com/crafted-tech/logonapp/platform"
)

var actions = customaction.New()

func run(handle C.ulong, action func(platform.Session) uint32) C.uint {
	return C.uint(action(platform.OpenSession(uint32(handle))))
}

//export CreateInstallationLogFile
func CreateInstallationLogFile(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.CreateInstallationLog(s)) })
}

//export DeleteWlconfigFile
func DeleteWlconfigFile(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.DeleteLegacyConfig(s)) })
}

//export ExecuteFullCleanup
func ExecuteFullCleanup(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.ExecuteFullCleanup(s)) })
}

//export ExecuteV3Cleanup
func ExecuteV3Cleanup(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.ExecuteV3Cleanup(s)) })
}

//export ExecuteV4Cleanup
func ExecuteV4Cleanup(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.ExecuteV4Cleanup(s)) })
}

//export ExecuteAuthPointCleanup
func ExecuteAuthPointCleanup(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.ExecuteAuthPointCleanup(s)) })
}

//export CopyConfigFileToDestination
func CopyConfigFileToDestination(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.CopyConfigFileToDestination(s)) })
}

//export OpenFileChooser
func OpenFileChooser(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.OpenFileChooser(s)) })
}

//export CopyConfigFiles
func CopyConfigFiles(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.StageConfigFiles(s)) })
}

//export RestoreConfigFiles
func RestoreConfigFiles(hInstall C.ulong) C.uint {
	return run(hInstall, func(s platform.Session) uint32 { return uint32(actions.RestoreConfigFiles(s)) })
}

func main() {}

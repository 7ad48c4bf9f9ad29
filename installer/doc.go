// Package installer provides the building blocks shared by the Logon App
// custom actions and the console uninstaller.
//
//   - Logger: leveled logging to the console, the installer session (with
//     a fallback file), or a timestamped temp file, plus an in-memory copy
//   - Status: the codes returned to the installer host
//   - File helpers: copy, write, ensure-dir, existence checks
//   - ParseCustomActionData: "key=value;..." parameter parsing
//
// # Basic Usage
//
// Inside a custom action:
//
//	log := installer.NewSessionLogger(session, installer.DefaultFallbackLogPath())
//	log.Info("Starting config file copy operation...")
//	params := installer.ParseCustomActionData(data)
//
// From a console program:
//
//	log := installer.NewConsoleLogger(os.Stdout)
//	log.Warn("Strategy %s reported issues.", name)
//
// A nil *Logger is valid and discards everything.
package installer

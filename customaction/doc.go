// Package customaction implements the Windows Installer custom actions of
// the Logon App package. Each action takes the installer session, logs
// through it, and returns the status code the installer expects.
package customaction

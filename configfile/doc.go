// Package configfile places the Logon App configuration file during
// install and carries legacy configuration across an upgrade.
//
// A configuration source is resolved from installer parameters (inline
// content, an explicit path, or the folder the package was launched from)
// and copied to the Program Files resource folder. Before legacy cleanup
// removes the v3 files, Stage copies them to a temporary folder; Restore
// later moves them to their v4 locations.
package configfile

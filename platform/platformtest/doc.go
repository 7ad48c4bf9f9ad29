// Package platformtest provides in-memory fakes of the platform
// capabilities for tests: a case-insensitive registry tree and an
// installer session that records properties and messages.
package platformtest

package cleanup

import "strings"

// Matcher reports whether a display name contains any of its patterns.
// Matching is a case-sensitive substring test.
type Matcher []string

// Match returns true if value contains at least one pattern.
func (m Matcher) Match(value string) bool {
	for _, p := range m {
		if p != "" && strings.Contains(value, p) {
			return true
		}
	}
	return false
}

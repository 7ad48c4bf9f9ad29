package installer

import "strings"

// ParseCustomActionData splits the "key=value;key=value" string the
// installer passes to deferred custom actions. Only the first '=' of a pair
// separates key from value; pairs without '=' or with an empty key are
// dropped.
func ParseCustomActionData(data string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(data, ";") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		params[key] = value
	}
	return params
}

package cleanup

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FormatGUID renders id in registry form: upper case inside braces.
func FormatGUID(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}

// PackProductCode converts a product code into the 32-character packed form
// Windows Installer uses as a key name under Installer\Products.
func PackProductCode(id uuid.UUID) string {
	return transposeCode(strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")))
}

// UnpackProductCode reverses PackProductCode.
func UnpackProductCode(packed string) (uuid.UUID, error) {
	if len(packed) != 32 {
		return uuid.Nil, fmt.Errorf("packed product code %q: want 32 hex digits", packed)
	}
	return uuid.Parse(transposeCode(packed))
}

// transposeCode reverses the first three GUID groups and swaps the nibbles
// of each remaining byte. The transform is its own inverse.
func transposeCode(hex string) string {
	b := []byte(hex)
	out := make([]byte, 0, 32)
	out = append(out, reversed(b[0:8])...)
	out = append(out, reversed(b[8:12])...)
	out = append(out, reversed(b[12:16])...)
	for i := 16; i < 32; i += 2 {
		out = append(out, b[i+1], b[i])
	}
	return string(out)
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

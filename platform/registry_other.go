//go:build !windows

package platform

type unsupportedRegistry struct{}

// SystemRegistry returns a Registry that fails every call with ErrUnsupported.
// There is no system registry outside Windows.
func SystemRegistry() Registry {
	return unsupportedRegistry{}
}

func (unsupportedRegistry) SubKeyNames(RootKey, string) ([]string, error) {
	return nil, ErrUnsupported
}

func (unsupportedRegistry) StringValue(RootKey, string, string) (string, error) {
	return "", ErrUnsupported
}

func (unsupportedRegistry) DeleteTree(RootKey, string) error {
	return ErrUnsupported
}

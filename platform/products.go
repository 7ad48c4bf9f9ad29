package platform

// Product is a Windows Installer product registered on the machine.
type Product struct {
	Code            string // product code, e.g. "{BCB72349-...}"
	Name            string
	Version         string
	InstallLocation string
}

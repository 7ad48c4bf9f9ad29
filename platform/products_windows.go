//go:build windows

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// InstalledProducts lists the products known to Windows Installer through
// the WindowsInstaller.Installer automation object.
func InstalledProducts() ([]Product, error) {
	// COM is thread-bound
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		if oleErr, ok := err.(*ole.OleError); ok {
			code := oleErr.Code()
			if code != 0 && code != 1 { // S_OK=0, S_FALSE=1
				return nil, fmt.Errorf("COM initialization failed: %s", oleErrorString(err))
			}
		}
	}
	defer ole.CoUninitialize()

	obj, err := oleutil.CreateObject("WindowsInstaller.Installer")
	if err != nil {
		return nil, fmt.Errorf("cannot create WindowsInstaller.Installer: %s", oleErrorString(err))
	}
	defer obj.Release()

	msi, err := obj.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("cannot get installer interface: %s", oleErrorString(err))
	}
	defer msi.Release()

	listVariant, err := oleutil.GetProperty(msi, "Products")
	if err != nil {
		return nil, fmt.Errorf("cannot list products: %s", oleErrorString(err))
	}
	list := listVariant.ToIDispatch()
	defer list.Release()

	countVariant, err := oleutil.GetProperty(list, "Count")
	if err != nil {
		return nil, fmt.Errorf("cannot count products: %s", oleErrorString(err))
	}
	count := int(countVariant.Val)

	products := make([]Product, 0, count)
	for i := 0; i < count; i++ {
		item, err := oleutil.GetProperty(list, "Item", i)
		if err != nil {
			continue
		}
		code := item.ToString()
		products = append(products, Product{
			Code:            code,
			Name:            productInfo(msi, code, "ProductName"),
			Version:         productInfo(msi, code, "VersionString"),
			InstallLocation: productInfo(msi, code, "InstallLocation"),
		})
	}

	return products, nil
}

// productInfo reads one ProductInfo attribute; unknown attributes read as "".
func productInfo(msi *ole.IDispatch, code, attribute string) string {
	v, err := oleutil.GetProperty(msi, "ProductInfo", code, attribute)
	if err != nil {
		return ""
	}
	return v.ToString()
}

// oleErrorString extracts a meaningful error message from OLE errors.
func oleErrorString(err error) string {
	if err == nil {
		return "unknown error"
	}
	if oleErr, ok := err.(*ole.OleError); ok {
		return fmt.Sprintf("%s (HRESULT: 0x%08X)", oleErr.Error(), uint32(oleErr.Code()))
	}
	return err.Error()
}

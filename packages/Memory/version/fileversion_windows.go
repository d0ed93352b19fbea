//go:build windows

package version

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func readFileVersion(path string) (FileVersion, error) {
	size, err := windows.GetFileVersionInfoSize(path, nil)
	if err != nil {
		return FileVersion{}, err
	}
	data := make([]byte, size)
	if err := windows.GetFileVersionInfo(path, 0, size, unsafe.Pointer(&data[0])); err != nil {
		return FileVersion{}, err
	}

	var fixed *windows.VS_FIXEDFILEINFO
	var n uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&data[0]), `\`, unsafe.Pointer(&fixed), &n); err != nil {
		return FileVersion{}, err
	}
	return FileVersion{
		uint16(fixed.FileVersionMS >> 16),
		uint16(fixed.FileVersionMS),
		uint16(fixed.FileVersionLS >> 16),
		uint16(fixed.FileVersionLS),
	}, nil
}

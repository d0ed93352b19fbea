//go:build windows

package memory

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func readMemory(address Address, buffer []byte) error {
	var read uintptr
	err := windows.ReadProcessMemory(
		windows.CurrentProcess(),
		uintptr(address),
		&buffer[0],
		uintptr(len(buffer)),
		&read,
	)
	if err != nil {
		return err
	}
	if read < uintptr(len(buffer)) {
		return fmt.Errorf("only read %d bytes out of %d requested", read, len(buffer))
	}
	return nil
}

// WriteProcessMemory on the current process lifts page protection for the
// duration of the write, so code pages can be patched without VirtualProtect.
func writeMemory(address Address, buffer []byte) error {
	var written uintptr
	err := windows.WriteProcessMemory(
		windows.CurrentProcess(),
		uintptr(address),
		&buffer[0],
		uintptr(len(buffer)),
		&written,
	)
	if err != nil {
		return err
	}
	if written < uintptr(len(buffer)) {
		return fmt.Errorf("only wrote %d bytes out of %d requested", written, len(buffer))
	}
	return nil
}

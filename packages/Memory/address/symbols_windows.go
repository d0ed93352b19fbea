//go:build windows

package address

import (
	"d2mapi/packages/Memory/memory"

	"golang.org/x/sys/windows"
)

// SystemSymbols asks the OS loader, so forwarded exports resolve too.
type SystemSymbols struct{}

func (SystemSymbols) Export(base memory.Address, name string) (memory.Address, error) {
	proc, err := windows.GetProcAddress(windows.Handle(base), name)
	if err != nil {
		return 0, err
	}
	return memory.Address(proc), nil
}

func (SystemSymbols) Ordinal(base memory.Address, ordinal uint16) (memory.Address, error) {
	proc, err := windows.GetProcAddressByOrdinal(windows.Handle(base), uintptr(ordinal))
	if err != nil {
		return 0, err
	}
	return memory.Address(proc), nil
}

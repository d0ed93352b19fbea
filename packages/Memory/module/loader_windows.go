//go:build windows

package module

import (
	"d2mapi/packages/Memory/memory"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// SystemLoader finds modules already mapped into the process. With Load set it
// maps missing ones through LoadLibrary, as the game's own loader would.
type SystemLoader struct {
	Load bool
}

func (l SystemLoader) Base(path string) (memory.Address, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	if h := win.GetModuleHandle(name); h != 0 {
		return memory.Address(h), nil
	}
	if !l.Load {
		return 0, windows.ERROR_MOD_NOT_FOUND
	}
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return memory.Address(h), nil
}

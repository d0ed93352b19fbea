//go:build !windows

package address

import (
	"errors"

	"d2mapi/packages/Memory/memory"
)

var errSymbolsUnsupported = errors.New("OS symbol lookup is not supported on this platform")

type SystemSymbols struct{}

func (SystemSymbols) Export(memory.Address, string) (memory.Address, error) {
	return 0, errSymbolsUnsupported
}

func (SystemSymbols) Ordinal(memory.Address, uint16) (memory.Address, error) {
	return 0, errSymbolsUnsupported
}

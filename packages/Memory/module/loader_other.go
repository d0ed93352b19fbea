//go:build !windows

package module

import (
	"errors"

	"d2mapi/packages/Memory/memory"
)

var errLoaderUnsupported = errors.New("module loading is not supported on this platform")

type SystemLoader struct {
	Load bool
}

func (SystemLoader) Base(string) (memory.Address, error) {
	return 0, errLoaderUnsupported
}

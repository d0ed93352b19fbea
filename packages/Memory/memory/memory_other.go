//go:build !windows

package memory

func readMemory(Address, []byte) error {
	return ErrUnsupported
}

func writeMemory(Address, []byte) error {
	return ErrUnsupported
}

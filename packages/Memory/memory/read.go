package memory

import (
	"bytes"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func bytesOf[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// Read decodes a T in host byte order from acc at address.
func Read[T Number](acc Accessor, address Address) (T, error) {
	var result T
	if err := acc.Read(address, bytesOf(&result)); err != nil {
		return 0, err
	}
	return result, nil
}

func Write[T Number](acc Accessor, address Address, value T) error {
	return acc.Write(address, bytesOf(&value))
}

func ReadPtr32(acc Accessor, address Address) (Address, error) {
	p, err := Read[uint32](acc, address)
	if err != nil {
		return 0, err
	}
	return Address(p), nil
}

// ReadString reads a NUL-terminated string of at most maxLength bytes.
func ReadString(acc Accessor, address Address, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = 260
	}
	buffer := make([]byte, maxLength)
	if err := acc.Read(address, buffer); err != nil {
		return "", err
	}
	if idx := bytes.IndexByte(buffer, 0); idx != -1 {
		buffer = buffer[:idx]
	}
	return string(buffer), nil
}

package memory

import (
	"errors"
	"fmt"
)

const (
	dosMagic          = 0x5A4D
	ntSignature       = 0x00004550
	lfanewOffset      = 0x3C
	sizeOfImageOffset = 0x50
)

var ErrNotImage = errors.New("not a mapped PE image")

// ImageSize reads SizeOfImage from the PE headers of a module mapped at base.
func ImageSize(acc Accessor, base Address) (uint32, error) {
	magic, err := Read[uint16](acc, base)
	if err != nil {
		return 0, err
	}
	if magic != dosMagic {
		return 0, fmt.Errorf("image at %#x: bad DOS magic %#x: %w", uintptr(base), magic, ErrNotImage)
	}
	lfanew, err := Read[int32](acc, base+lfanewOffset)
	if err != nil {
		return 0, err
	}
	nt := base.Add(int64(lfanew))
	sig, err := Read[uint32](acc, nt)
	if err != nil {
		return 0, err
	}
	if sig != ntSignature {
		return 0, fmt.Errorf("image at %#x: bad NT signature %#x: %w", uintptr(base), sig, ErrNotImage)
	}
	return Read[uint32](acc, nt+sizeOfImageOffset)
}

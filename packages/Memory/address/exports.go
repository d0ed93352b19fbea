package address

import (
	"errors"
	"fmt"

	"d2mapi/packages/Memory/memory"
)

const (
	optionalHeaderOffset = 24
	pe32Magic            = 0x10b
	pe32PlusMagic        = 0x20b
)

var errForwardedExport = errors.New("export is forwarded to another module")

// ImageSymbols walks the export directory of a mapped image through an
// accessor instead of asking the OS loader.
type ImageSymbols struct {
	Memory memory.Accessor
}

type exportDirectory struct {
	start, end   uint32
	ordinalBase  uint32
	numFunctions uint32
	numNames     uint32
	functions    uint32
	names        uint32
	nameOrdinals uint32
}

func (s ImageSymbols) directory(base memory.Address) (exportDirectory, error) {
	var dir exportDirectory
	lfanew, err := memory.Read[int32](s.Memory, base+0x3C)
	if err != nil {
		return dir, err
	}
	opt := base.Add(int64(lfanew) + optionalHeaderOffset)
	magic, err := memory.Read[uint16](s.Memory, opt)
	if err != nil {
		return dir, err
	}
	var dd memory.Address
	switch magic {
	case pe32Magic:
		dd = opt + 96
	case pe32PlusMagic:
		dd = opt + 112
	default:
		return dir, fmt.Errorf("image at %#x: unknown optional header magic %#x: %w", uintptr(base), magic, memory.ErrNotImage)
	}

	rva, err := memory.Read[uint32](s.Memory, dd)
	if err != nil {
		return dir, err
	}
	size, err := memory.Read[uint32](s.Memory, dd+4)
	if err != nil {
		return dir, err
	}
	if rva == 0 {
		return dir, errors.New("image has no export directory")
	}
	dir.start, dir.end = rva, rva+size

	fields := []*uint32{&dir.ordinalBase, &dir.numFunctions, &dir.numNames, &dir.functions, &dir.names, &dir.nameOrdinals}
	for i, f := range fields {
		if *f, err = memory.Read[uint32](s.Memory, base+memory.Address(rva)+0x10+memory.Address(i*4)); err != nil {
			return dir, err
		}
	}
	return dir, nil
}

func (s ImageSymbols) function(base memory.Address, dir exportDirectory, index uint32) (memory.Address, error) {
	rva, err := memory.Read[uint32](s.Memory, base+memory.Address(dir.functions)+memory.Address(index*4))
	if err != nil {
		return 0, err
	}
	if rva == 0 {
		return 0, errors.New("empty export slot")
	}
	if rva >= dir.start && rva < dir.end {
		return 0, errForwardedExport
	}
	return base + memory.Address(rva), nil
}

func (s ImageSymbols) Export(base memory.Address, name string) (memory.Address, error) {
	dir, err := s.directory(base)
	if err != nil {
		return 0, err
	}
	for i := uint32(0); i < dir.numNames; i++ {
		nameRVA, err := memory.Read[uint32](s.Memory, base+memory.Address(dir.names)+memory.Address(i*4))
		if err != nil {
			return 0, err
		}
		got, err := memory.ReadString(s.Memory, base+memory.Address(nameRVA), len(name)+1)
		if err != nil || got != name {
			continue
		}
		index, err := memory.Read[uint16](s.Memory, base+memory.Address(dir.nameOrdinals)+memory.Address(i*2))
		if err != nil {
			return 0, err
		}
		return s.function(base, dir, uint32(index))
	}
	return 0, errors.New("no such name in export table")
}

func (s ImageSymbols) Ordinal(base memory.Address, ordinal uint16) (memory.Address, error) {
	dir, err := s.directory(base)
	if err != nil {
		return 0, err
	}
	index := uint32(ordinal) - dir.ordinalBase
	if uint32(ordinal) < dir.ordinalBase || index >= dir.numFunctions {
		return 0, fmt.Errorf("ordinal out of range [%d, %d)", dir.ordinalBase, dir.ordinalBase+dir.numFunctions)
	}
	return s.function(base, dir, index)
}

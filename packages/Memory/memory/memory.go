package memory

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

// Address is a location in the address space of the current process. It is only
// meaningful for the lifetime of the process that resolved it.
type Address uintptr

func (a Address) Add(delta int64) Address {
	return Address(int64(a) + delta)
}

func (a Address) Pointer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(a)) //nolint:govet // audited raw-address conversion
}

func (a Address) String() string {
	return fmt.Sprintf("%#x", uintptr(a))
}

// Ptr32 is a pointer field embedded in a 32-bit game layout.
type Ptr32 uint32

func (p Ptr32) Address() Address {
	return Address(p)
}

var (
	ErrMemoryWriteFailed = errors.New("memory write failed")
	ErrMemoryReadFailed  = errors.New("memory read failed")
	ErrAddressNotMapped  = errors.New("address not mapped")
	ErrUnsupported       = errors.New("in-process memory access is not supported on this platform")
)

type WriteError struct {
	Address Address
	Size    int
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("WriteProcessMemory failed at address %#x (%d bytes): %v", uintptr(e.Address), e.Size, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrMemoryWriteFailed, e.Err}
}

type ReadError struct {
	Address Address
	Size    int
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("ReadProcessMemory failed at address %#x (%d bytes): %v", uintptr(e.Address), e.Size, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrMemoryReadFailed, e.Err}
}

// Accessor reads and writes raw bytes of an address space.
type Accessor interface {
	Read(address Address, buffer []byte) error
	Write(address Address, buffer []byte) error
}

// Process is the address space of the process this code is loaded into.
type Process struct {
	Pid uint32
}

func Current() *Process {
	return &Process{Pid: uint32(os.Getpid())}
}

func (p *Process) Read(address Address, buffer []byte) error {
	if len(buffer) == 0 {
		return nil
	}
	if err := readMemory(address, buffer); err != nil {
		return &ReadError{Address: address, Size: len(buffer), Err: err}
	}
	return nil
}

func (p *Process) Write(address Address, buffer []byte) error {
	if len(buffer) == 0 {
		return nil
	}
	if err := writeMemory(address, buffer); err != nil {
		return &WriteError{Address: address, Size: len(buffer), Err: err}
	}
	return nil
}

func (p *Process) ReadBytes(address Address, length int) ([]byte, error) {
	buffer := make([]byte, length)
	if err := p.Read(address, buffer); err != nil {
		return nil, err
	}
	return buffer, nil
}

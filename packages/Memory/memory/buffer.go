package memory

// Buffer is an address space backed by a byte slice mapped at Base. It stands in
// for the live process wherever memory has to be simulated.
type Buffer struct {
	Base Address
	Data []byte

	// WriteErr, when set, fails every Write without touching Data.
	WriteErr error
	Writes   int
}

func NewBuffer(base Address, size int) *Buffer {
	return &Buffer{Base: base, Data: make([]byte, size)}
}

func (b *Buffer) offset(address Address, size int) (int, bool) {
	if address < b.Base {
		return 0, false
	}
	off := uintptr(address - b.Base)
	if off > uintptr(len(b.Data)) || uintptr(len(b.Data))-off < uintptr(size) {
		return 0, false
	}
	return int(off), true
}

func (b *Buffer) Read(address Address, buffer []byte) error {
	off, ok := b.offset(address, len(buffer))
	if !ok {
		return &ReadError{Address: address, Size: len(buffer), Err: ErrAddressNotMapped}
	}
	copy(buffer, b.Data[off:])
	return nil
}

func (b *Buffer) Write(address Address, buffer []byte) error {
	if b.WriteErr != nil {
		return &WriteError{Address: address, Size: len(buffer), Err: b.WriteErr}
	}
	off, ok := b.offset(address, len(buffer))
	if !ok {
		return &WriteError{Address: address, Size: len(buffer), Err: ErrAddressNotMapped}
	}
	copy(b.Data[off:], buffer)
	b.Writes++
	return nil
}

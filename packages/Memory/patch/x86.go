package patch

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"d2mapi/packages/Memory/memory"
)

type Opcode byte

const (
	OpNop  Opcode = 0x90
	OpCall Opcode = 0xE8
	OpJump Opcode = 0xE9

	branchSize = 5
)

// NewNop fills size bytes at address with NOPs.
func NewNop(mem memory.Accessor, address memory.Address, size int) (*Patch, error) {
	return New(mem, address, bytes.Repeat([]byte{byte(OpNop)}, size))
}

// NewBranch writes a rel32 call or jump to target and pads the rest of size
// with NOPs, so a whole instruction sequence can be replaced.
func NewBranch(mem memory.Accessor, address memory.Address, op Opcode, target memory.Address, size int) (*Patch, error) {
	if op != OpCall && op != OpJump {
		return nil, fmt.Errorf("unsupported branch opcode %#x", byte(op))
	}
	if size < branchSize {
		return nil, fmt.Errorf("branch needs %d bytes, got %d", branchSize, size)
	}
	b := bytes.Repeat([]byte{byte(OpNop)}, size)
	b[0] = byte(op)
	rel := int64(target) - (int64(address) + branchSize)
	binary.LittleEndian.PutUint32(b[1:], uint32(int32(rel)))
	return New(mem, address, b)
}

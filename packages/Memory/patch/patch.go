package patch

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"sync"

	"d2mapi/packages/Memory/memory"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrMemoryWriteFailed = memory.ErrMemoryWriteFailed
	ErrUnexpectedBytes   = errors.New("target bytes do not match the expected pattern")
	ErrEmptyPatch        = errors.New("patch has no bytes")
)

var Writes = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "d2mapi",
	Subsystem: "patch",
	Name:      "writes",
}, []string{"op", "result"})

// Patch overwrites bytes at a fixed address and can put the originals back.
//
// The original bytes are captured once, when the patch is created. Two patches
// over overlapping ranges therefore restore each other's bytes incorrectly;
// callers must not create them. Discarding a Patch does not remove it.
type Patch struct {
	mu       sync.Mutex
	mem      memory.Accessor
	address  memory.Address
	bytes    []byte
	original []byte
	applied  bool
}

// New snapshots len(b) bytes at address. Nothing is written until Apply.
func New(mem memory.Accessor, address memory.Address, b []byte) (*Patch, error) {
	if len(b) == 0 {
		return nil, ErrEmptyPatch
	}
	original := make([]byte, len(b))
	if err := mem.Read(address, original); err != nil {
		return nil, fmt.Errorf("snapshot patch target: %w", err)
	}
	return &Patch{
		mem:      mem,
		address:  address,
		bytes:    slices.Clone(b),
		original: original,
	}, nil
}

// NewChecked is New, refusing targets whose current bytes do not match expect.
func NewChecked(mem memory.Accessor, address memory.Address, b []byte, expect memory.Pattern) (*Patch, error) {
	p, err := New(mem, address, b)
	if err != nil {
		return nil, err
	}
	current := p.original
	if expect.Len() > len(current) {
		current = make([]byte, expect.Len())
		if err := mem.Read(address, current); err != nil {
			return nil, fmt.Errorf("read patch context: %w", err)
		}
	}
	if expect.Find(current[:expect.Len()]) != 0 {
		return nil, fmt.Errorf("%w at %#x: want %s", ErrUnexpectedBytes, uintptr(address), expect)
	}
	return p, nil
}

func (p *Patch) Address() memory.Address {
	return p.address
}

func (p *Patch) Bytes() []byte {
	return slices.Clone(p.bytes)
}

func (p *Patch) Original() []byte {
	return slices.Clone(p.original)
}

func (p *Patch) Applied() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.applied
}

// Apply writes the patch bytes. It is a no-op when already applied; on failure
// the patch stays unapplied.
func (p *Patch) Apply() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.applied {
		return nil
	}
	if err := p.write("apply", p.bytes); err != nil {
		return err
	}
	p.applied = true
	return nil
}

// Remove restores the snapshot. It is a no-op when not applied; on failure the
// patch stays applied.
func (p *Patch) Remove() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.applied {
		return nil
	}
	if err := p.write("remove", p.original); err != nil {
		return err
	}
	p.applied = false
	return nil
}

func (p *Patch) write(op string, b []byte) error {
	if err := p.mem.Write(p.address, b); err != nil {
		Writes.WithLabelValues(op, "error").Inc()
		return err
	}
	Writes.WithLabelValues(op, "ok").Inc()
	return nil
}

// Equal reports whether the memory under p currently holds the patch bytes.
func (p *Patch) Equal() (bool, error) {
	current := make([]byte, len(p.bytes))
	if err := p.mem.Read(p.address, current); err != nil {
		return false, err
	}
	return bytes.Equal(current, p.bytes), nil
}

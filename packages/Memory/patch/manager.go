package patch

import (
	"errors"
	"fmt"
	"sync"

	"d2mapi/packages/Memory/logging"
)

var (
	ErrUnknownPatch   = errors.New("unknown patch")
	ErrDuplicatePatch = errors.New("patch name already registered")
)

// Manager keeps named patches so a feature can switch them as a group.
type Manager struct {
	mu      sync.Mutex
	order   []string
	patches map[string]*Patch
	log     *logging.Logger
}

func NewManager(log *logging.Logger) *Manager {
	return &Manager{
		patches: make(map[string]*Patch),
		log:     logging.Or(log),
	}
}

func (m *Manager) Add(name string, p *Patch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.patches[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePatch, name)
	}
	m.patches[name] = p
	m.order = append(m.order, name)
	return nil
}

func (m *Manager) Get(name string) (*Patch, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.patches[name]
	return p, ok
}

func (m *Manager) lookup(name string) (*Patch, error) {
	p, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPatch, name)
	}
	return p, nil
}

func (m *Manager) Apply(name string) error {
	p, err := m.lookup(name)
	if err != nil {
		return err
	}
	if err := p.Apply(); err != nil {
		m.log.Error("patch failed", "name", name, "address", p.Address(), "err", err)
		return fmt.Errorf("apply %s: %w", name, err)
	}
	m.log.Info("patch applied", "name", name, "address", p.Address())
	return nil
}

func (m *Manager) Remove(name string) error {
	p, err := m.lookup(name)
	if err != nil {
		return err
	}
	if err := p.Remove(); err != nil {
		m.log.Error("restore failed", "name", name, "address", p.Address(), "err", err)
		return fmt.Errorf("remove %s: %w", name, err)
	}
	m.log.Info("patch removed", "name", name, "address", p.Address())
	return nil
}

func (m *Manager) names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

// ApplyAll applies patches in registration order and stops at the first failure.
func (m *Manager) ApplyAll() error {
	for _, name := range m.names() {
		if err := m.Apply(name); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAll restores in reverse registration order, attempting every patch.
func (m *Manager) RemoveAll() error {
	names := m.names()
	var errs []error
	for i := len(names) - 1; i >= 0; i-- {
		if err := m.Remove(names[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) Active() []string {
	var active []string
	for _, name := range m.names() {
		if p, ok := m.Get(name); ok && p.Applied() {
			active = append(active, name)
		}
	}
	return active
}

func (m *Manager) Status() string {
	return fmt.Sprintf("Patches: %d/%d", len(m.Active()), len(m.names()))
}

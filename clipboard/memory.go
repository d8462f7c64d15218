package clipboard

import (
	"errors"
	"fmt"
	"sync"
)

const (
	mimeText = "text/plain"
	mimePNG  = "image/png"
)

// Memory slot numbering mirrors Win32: one predefined text slot, registered
// formats from 0xC000 up.
const (
	memoryTextAtom  uint32 = 13
	memoryFirstAtom uint32 = 0xC000
)

var errNotOpen = errors.New("clipboard not open")

// Memory is an in-process clipboard. It backs headless environments where no
// display server is reachable, and tests. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	busy  bool
	open  bool
	atoms map[string]uint32
	names map[uint32]string
	next  uint32
	order []uint32
	slots map[uint32][]byte
}

var _ Port = (*Memory)(nil)

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{
		atoms: map[string]uint32{mimeText: memoryTextAtom},
		names: map[uint32]string{memoryTextAtom: mimeText},
		next:  memoryFirstAtom,
		slots: make(map[uint32][]byte),
	}
}

// SetBusy makes Open fail as if another process held the clipboard.
func (m *Memory) SetBusy(busy bool) {
	m.mu.Lock()
	m.busy = busy
	m.mu.Unlock()
}

func (m *Memory) Name() string { return "in-process memory" }

func (m *Memory) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy || m.open {
		return fmt.Errorf("clipboard held by another owner: %w", ErrUnavailable)
	}
	m.open = true
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return errNotOpen
	}
	m.open = false
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return errNotOpen
	}
	m.order = nil
	m.slots = make(map[uint32][]byte)
	return nil
}

// Declare is a no-op: slots appear in write order.
func (m *Memory) Declare([]NativeFormat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return errNotOpen
	}
	return nil
}

func (m *Memory) Register(id Identifier) (NativeFormat, error) {
	if err := id.Validate(); err != nil {
		return NativeFormat{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	atom, ok := m.atoms[string(id)]
	if !ok {
		atom = m.next
		m.next++
		m.atoms[string(id)] = atom
		m.names[atom] = string(id)
	}
	return NativeFormat{ID: atom, Name: string(id)}, nil
}

func (m *Memory) TextFormat() NativeFormat {
	return NativeFormat{ID: memoryTextAtom, Name: mimeText}
}

func (m *Memory) Write(f NativeFormat, _ Kind, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return errNotOpen
	}
	if _, ok := m.names[f.ID]; !ok {
		return fmt.Errorf("format %s not registered: %w", f, ErrRegister)
	}
	if _, ok := m.slots[f.ID]; !ok {
		m.order = append(m.order, f.ID)
	}
	m.slots[f.ID] = append([]byte{}, data...)
	return nil
}

func (m *Memory) Has(f NativeFormat) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.slots[f.ID]
	return m.open && ok
}

func (m *Memory) Read(f NativeFormat, _ Kind) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return nil, errNotOpen
	}
	b, ok := m.slots[f.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", f, ErrAbsent)
	}
	return append([]byte{}, b...), nil
}

func (m *Memory) Formats() ([]NativeFormat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return nil, errNotOpen
	}
	out := make([]NativeFormat, len(m.order))
	for i, atom := range m.order {
		out[i] = NativeFormat{ID: atom, Name: m.names[atom]}
	}
	return out, nil
}

func (m *Memory) FormatName(f NativeFormat) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name, ok := m.names[f.ID]
	return name, ok
}

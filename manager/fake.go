package manager

import (
	"fmt"
	"sync"

	"keybridge/keycode"
)

// Fake is an in-memory Backend for tests and the doctor's dry-run mode.
// Sim* methods play the role of the OS notification stream.
type Fake struct {
	mu     sync.Mutex
	events chan RawEvent
	regs   map[uint32]keycode.Descriptor
	closed bool

	// RegisterErr, when set, decides the outcome of Register calls;
	// lets tests model conflicts with other processes.
	RegisterErr func(d keycode.Descriptor) error
}

func NewFake() *Fake {
	return &Fake{
		events: make(chan RawEvent, eventBufferSize),
		regs:   map[uint32]keycode.Descriptor{},
	}
}

func (f *Fake) Register(d keycode.Descriptor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if f.RegisterErr != nil {
		if err := f.RegisterErr(d); err != nil {
			return err
		}
	}
	if _, dup := f.regs[d.ID()]; dup {
		return fmt.Errorf("registering %s: already registered", d)
	}
	f.regs[d.ID()] = d
	return nil
}

func (f *Fake) Unregister(d keycode.Descriptor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if _, ok := f.regs[d.ID()]; !ok {
		return fmt.Errorf("unregistering %s: not registered", d)
	}
	delete(f.regs, d.ID())
	return nil
}

func (f *Fake) Events() <-chan RawEvent { return f.events }

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Registered reports whether the id currently has a fake OS registration.
func (f *Fake) Registered(id uint32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.regs[id]
	return ok
}

// SimPress injects a native press notification for the identifier.
func (f *Fake) SimPress(id uint32) { f.events <- RawEvent{ID: id, Pressed: true} }

// SimRelease injects a native release notification.
func (f *Fake) SimRelease(id uint32) { f.events <- RawEvent{ID: id, Pressed: false} }

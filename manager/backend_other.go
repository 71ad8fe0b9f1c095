//go:build !windows

package manager

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"keybridge/keycode"
)

// nativeHotkey is the slice of *hotkey.Hotkey the backend needs. Tests
// substitute a stub; everything else goes through hotkey.New.
type nativeHotkey interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
	Keyup() <-chan hotkey.Event
}

type registration struct {
	hk   nativeHotkey
	stop chan struct{}
}

// xBackend is the direct variant: no thread affinity to work around, so
// register/unregister run on the caller's goroutine. golang.design/x/hotkey
// is not documented safe for concurrent registration, hence the explicit
// lock.
type xBackend struct {
	mu        sync.Mutex
	events    chan RawEvent
	regs      map[uint32]*registration
	newHotkey func(mods []keycode.NativeMod, key keycode.NativeKey) nativeHotkey
	closed    bool
}

func newPlatformBackend() (Backend, error) {
	return &xBackend{
		events: make(chan RawEvent, eventBufferSize),
		regs:   map[uint32]*registration{},
		newHotkey: func(mods []keycode.NativeMod, key keycode.NativeKey) nativeHotkey {
			return hotkey.New(mods, key)
		},
	}, nil
}

func (b *xBackend) Register(d keycode.Descriptor) error {
	key, ok := keycode.EncodeKey(d.Key)
	if !ok {
		return fmt.Errorf("%s: %w", d, ErrUnsupported)
	}
	mods, ok := keycode.EncodeMods(d.Mods)
	if !ok {
		return fmt.Errorf("%s: %w", d, ErrUnsupported)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	id := d.ID()
	hk := b.newHotkey(mods, key)
	if err := hk.Register(); err != nil {
		// Duplicate semantics belong to the native layer: X11 rejects a
		// second grab of a live combination, Carbon does not. Whatever it
		// said is what the caller sees.
		return fmt.Errorf("registering %s: %w", d, err)
	}

	if _, dup := b.regs[id]; dup {
		// The OS accepted a second registration of the same combination.
		// One native handle per id is enough to receive its events, so
		// release the new one and keep the original wiring.
		hk.Unregister()
		return nil
	}

	reg := &registration{hk: hk, stop: make(chan struct{})}
	b.regs[id] = reg
	go b.forward(id, reg)
	return nil
}

// forward translates the per-hotkey keydown/keyup channels into the
// shared raw event stream. Never blocks on a slow consumer.
func (b *xBackend) forward(id uint32, reg *registration) {
	for {
		select {
		case <-reg.hk.Keydown():
			b.emit(RawEvent{ID: id, Pressed: true})
		case <-reg.hk.Keyup():
			b.emit(RawEvent{ID: id, Pressed: false})
		case <-reg.stop:
			return
		}
	}
}

func (b *xBackend) emit(ev RawEvent) {
	select {
	case b.events <- ev:
	default:
	}
}

func (b *xBackend) Unregister(d keycode.Descriptor) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	id := d.ID()
	reg, ok := b.regs[id]
	if !ok {
		return fmt.Errorf("unregistering %s: not registered", d)
	}
	close(reg.stop)
	delete(b.regs, id)
	if err := reg.hk.Unregister(); err != nil {
		return fmt.Errorf("unregistering %s: %w", d, err)
	}
	return nil
}

func (b *xBackend) Events() <-chan RawEvent {
	return b.events
}

func (b *xBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for id, reg := range b.regs {
		close(reg.stop)
		reg.hk.Unregister()
		delete(b.regs, id)
	}
	return nil
}

//go:build !windows

package manager

import (
	"errors"
	"testing"
	"time"

	"golang.design/x/hotkey"

	"keybridge/keycode"
)

type stubHotkey struct {
	registerErr  error
	unregistered bool
	keydown      chan hotkey.Event
	keyup        chan hotkey.Event
}

func newStubHotkey() *stubHotkey {
	return &stubHotkey{
		keydown: make(chan hotkey.Event, 1),
		keyup:   make(chan hotkey.Event, 1),
	}
}

func (s *stubHotkey) Register() error              { return s.registerErr }
func (s *stubHotkey) Unregister() error            { s.unregistered = true; return nil }
func (s *stubHotkey) Keydown() <-chan hotkey.Event { return s.keydown }
func (s *stubHotkey) Keyup() <-chan hotkey.Event   { return s.keyup }

// newStubBackend hands out the given stubs in order, one per Register.
func newStubBackend(stubs ...*stubHotkey) *xBackend {
	next := 0
	return &xBackend{
		events: make(chan RawEvent, eventBufferSize),
		regs:   map[uint32]*registration{},
		newHotkey: func([]keycode.NativeMod, keycode.NativeKey) nativeHotkey {
			s := stubs[next]
			next++
			return s
		},
	}
}

func waitRaw(t *testing.T, events <-chan RawEvent) RawEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event arrived")
		return RawEvent{}
	}
}

func TestRegisterForwardsEvents(t *testing.T) {
	s := newStubHotkey()
	b := newStubBackend(s)
	d := keycode.Descriptor{Key: keycode.KeyA, Mods: keycode.ModCtrl}
	if err := b.Register(d); err != nil {
		t.Fatalf("Register: %v", err)
	}

	s.keydown <- hotkey.Event{}
	if ev := waitRaw(t, b.Events()); ev.ID != d.ID() || !ev.Pressed {
		t.Fatalf("unexpected event %+v", ev)
	}
	s.keyup <- hotkey.Event{}
	if ev := waitRaw(t, b.Events()); ev.ID != d.ID() || ev.Pressed {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestRegisterDuplicateAcceptedByNative(t *testing.T) {
	first := newStubHotkey()
	second := newStubHotkey()
	b := newStubBackend(first, second)
	d := keycode.Descriptor{Key: keycode.KeyB, Mods: keycode.ModCtrl}

	if err := b.Register(d); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Carbon accepts a second grab of a live combination; the wrapper
	// reports that success and releases the redundant handle.
	if err := b.Register(d); err != nil {
		t.Fatalf("duplicate accepted by the native layer must not error: %v", err)
	}
	if !second.unregistered {
		t.Fatal("redundant handle should have been released")
	}

	// Events still flow through the original handle.
	first.keydown <- hotkey.Event{}
	if ev := waitRaw(t, b.Events()); ev.ID != d.ID() {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestRegisterDuplicateRejectedByNative(t *testing.T) {
	first := newStubHotkey()
	second := newStubHotkey()
	second.registerErr = errors.New("hot key already registered")
	b := newStubBackend(first, second)
	d := keycode.Descriptor{Key: keycode.KeyC, Mods: keycode.ModShift}

	if err := b.Register(d); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// X11 rejects the second grab; the native error comes back verbatim.
	err := b.Register(d)
	if err == nil {
		t.Fatal("rejected duplicate must surface the native error")
	}
	if !errors.Is(err, second.registerErr) {
		t.Fatalf("native error not preserved: %v", err)
	}
}

func TestUnregisterUnknown(t *testing.T) {
	b := newStubBackend()
	d := keycode.Descriptor{Key: keycode.KeyD, Mods: keycode.ModAlt}
	if err := b.Unregister(d); err == nil {
		t.Fatal("unregistering an unknown combination should error")
	}
}

// Package keybridge exposes process-wide global hotkeys to an embedding
// host: register key+modifier combinations, receive resolved
// press/release events, unregister. The handle is explicit and shareable;
// there is no hidden package-level manager.
package keybridge

import (
	"sync"

	"keybridge/bridge"
	"keybridge/keycode"
	"keybridge/log"
	"keybridge/manager"
	"keybridge/registry"
)

// HotKeys is the owning handle around the platform backend, the
// registration table and the event bridge. Construct it once with Create
// and share the pointer; all methods are safe for concurrent use.
type HotKeys struct {
	backend manager.Backend
	table   *registry.Table
	bridge  *bridge.Bridge

	destroyOnce sync.Once
}

// Create initializes the native hotkey subsystem. It returns an error
// when the subsystem is unavailable (no display connection, message pump
// thread failed to come up); there is no retry path at this layer.
func Create() (*HotKeys, error) {
	be, err := manager.New()
	if err != nil {
		log.Errorf("hotkey backend init failed: %v", err)
		return nil, err
	}
	return NewWithBackend(be), nil
}

// NewWithBackend wires a handle around an explicit backend. Embedders and
// tests inject manager.NewFake() through here; Create is the production
// path.
func NewWithBackend(be manager.Backend) *HotKeys {
	table := registry.New()
	return &HotKeys{
		backend: be,
		table:   table,
		bridge:  bridge.New(be.Events(), table),
	}
}

// Register binds the combination with the OS. The identifier is reported
// in the Outcome whether or not the call succeeded; the table gains an
// entry only on success. A conflict with another process is returned
// verbatim, never retried.
func (h *HotKeys) Register(mods keycode.Modifiers, key keycode.Code) manager.Outcome {
	d := keycode.Descriptor{Key: key, Mods: mods}
	id := d.ID()
	err := h.backend.Register(d)
	log.Registered(id, d.String(), err)
	if err != nil {
		return manager.Outcome{ID: id, Err: err}
	}
	h.table.Insert(id, d)
	return manager.Outcome{ID: id}
}

// Unregister releases the combination. The native call is made even when
// this handle has no record of the id; the OS decides what that means.
// The table entry is removed only on success.
func (h *HotKeys) Unregister(mods keycode.Modifiers, key keycode.Code) manager.Outcome {
	d := keycode.Descriptor{Key: key, Mods: mods}
	id := d.ID()
	err := h.backend.Unregister(d)
	log.Unregistered(id, d.String(), err)
	if err != nil {
		return manager.Outcome{ID: id, Err: err}
	}
	h.table.Remove(id)
	return manager.Outcome{ID: id}
}

// TakePoll hands out the single polling consumer; nil once taken or when
// a callback subscriber is attached.
func (h *HotKeys) TakePoll() *bridge.Poller {
	return h.bridge.TakePoll()
}

// Subscribe installs the persistent event callback. Returns false while
// another subscriber (or the poller) holds the stream; Detach first.
func (h *HotKeys) Subscribe(fn func(bridge.Event)) bool {
	return h.bridge.Subscribe(fn)
}

// Detach removes the current subscriber. Idempotent.
func (h *HotKeys) Detach() {
	h.bridge.Detach()
}

// Destroy tears the handle down: pending polls return, the subscriber is
// detached, native registrations are released. Idempotent and safe to
// call from a finalizer.
func (h *HotKeys) Destroy() {
	h.destroyOnce.Do(func() {
		h.bridge.Close()
		if err := h.backend.Close(); err != nil {
			log.Errorf("backend close: %v", err)
		}
	})
}

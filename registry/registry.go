// Package registry holds the shared identifier -> descriptor table used
// to resolve native hotkey events back to the combination that produced
// them.
package registry

import (
	"sync"

	"keybridge/keycode"
)

// Table maps hotkey identifiers to descriptors. Safe for concurrent use;
// the manager mutates it on register/unregister while the event bridge
// reads it on every native notification. The lock is never held across a
// blocking wait.
type Table struct {
	mu      sync.Mutex
	entries map[uint32]keycode.Descriptor
}

func New() *Table {
	return &Table{entries: map[uint32]keycode.Descriptor{}}
}

func (t *Table) Insert(id uint32, d keycode.Descriptor) {
	t.mu.Lock()
	t.entries[id] = d
	t.mu.Unlock()
}

// Remove deletes the entry and returns it, if present.
func (t *Table) Remove(id uint32) (keycode.Descriptor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.entries[id]
	if ok {
		delete(t.entries, id)
	}
	return d, ok
}

// Lookup returns a copy of the entry; the table may be mutated by another
// goroutine the moment the lock is released.
func (t *Table) Lookup(id uint32) (keycode.Descriptor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.entries[id]
	return d, ok
}

func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

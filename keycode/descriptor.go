package keycode

import (
	"encoding/binary"
	"hash/fnv"
)

// Descriptor is an immutable (key, modifier set) pair. Two descriptors
// with equal fields always hash to the same identifier, which is how
// native events are correlated back to their registration.
type Descriptor struct {
	Key  Code
	Mods Modifiers
}

// ID derives the numeric hotkey identifier from the descriptor. It is a
// pure function (FNV-1a over the modifier bits and the key token), not an
// allocated counter: re-registering the same combination must yield the
// same id, matching what the OS reports on re-registration.
func (d Descriptor) ID() uint32 {
	h := fnv.New32a()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(d.Mods))
	h.Write(buf[:])
	h.Write([]byte(d.Key.String()))
	return h.Sum32()
}

// String renders the descriptor as "Control+Shift+KeyA".
func (d Descriptor) String() string {
	mods := d.Mods.String()
	if mods == "" {
		return d.Key.String()
	}
	return mods + "+" + d.Key.String()
}

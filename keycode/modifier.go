package keycode

import "strings"

// Modifiers is a bitmask of modifier keys. The zero value is the empty
// set, which is a valid (modifier-less) hotkey.
type Modifiers uint32

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper
	ModMeta
	ModAltGraph
	ModCapsLock
	ModNumLock
	ModScrollLock
	ModFn
	ModHyper

	modMax
)

var modNames = map[Modifiers]string{
	ModCtrl:       "Control",
	ModShift:      "Shift",
	ModAlt:        "Alt",
	ModSuper:      "Super",
	ModMeta:       "Meta",
	ModAltGraph:   "AltGraph",
	ModCapsLock:   "CapsLock",
	ModNumLock:    "NumLock",
	ModScrollLock: "ScrollLock",
	ModFn:         "Fn",
	ModHyper:      "Hyper",
}

var modNameToBit = map[string]Modifiers{}

func init() {
	for m, name := range modNames {
		modNameToBit[name] = m
	}
}

// Has reports whether every bit of m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Split breaks the set into its single-bit members, lowest bit first.
func (m Modifiers) Split() []Modifiers {
	var out []Modifiers
	for bit := ModCtrl; bit < modMax; bit <<= 1 {
		if m&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// String renders the set as "Control+Shift" style, empty string for the
// empty set.
func (m Modifiers) String() string {
	var parts []string
	for _, bit := range m.Split() {
		if name, ok := modNames[bit]; ok {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseModifier resolves a single modifier name ("Control", "Shift", ...).
func ParseModifier(name string) (Modifiers, bool) {
	m, ok := modNameToBit[name]
	return m, ok
}

// ModifierNames returns the names of every known modifier bit.
func ModifierNames() []string {
	var out []string
	for bit := ModCtrl; bit < modMax; bit <<= 1 {
		out = append(out, modNames[bit])
	}
	return out
}

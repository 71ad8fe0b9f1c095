//go:build windows

package keycode

// NativeKey is a Win32 virtual-key code.
type NativeKey = uint32

// NativeMod is a Win32 RegisterHotKey modifier bitfield.
type NativeMod = uint32

// Modifier flags from winuser.h.
const (
	modWinAlt     NativeMod = 0x0001
	modWinControl NativeMod = 0x0002
	modWinShift   NativeMod = 0x0004
	modWinSuper   NativeMod = 0x0008
)

var vkCodes = map[Code]NativeKey{
	KeyA: 0x41, KeyB: 0x42, KeyC: 0x43, KeyD: 0x44, KeyE: 0x45,
	KeyF: 0x46, KeyG: 0x47, KeyH: 0x48, KeyI: 0x49, KeyJ: 0x4A,
	KeyK: 0x4B, KeyL: 0x4C, KeyM: 0x4D, KeyN: 0x4E, KeyO: 0x4F,
	KeyP: 0x50, KeyQ: 0x51, KeyR: 0x52, KeyS: 0x53, KeyT: 0x54,
	KeyU: 0x55, KeyV: 0x56, KeyW: 0x57, KeyX: 0x58, KeyY: 0x59,
	KeyZ: 0x5A,

	Digit0: 0x30, Digit1: 0x31, Digit2: 0x32, Digit3: 0x33, Digit4: 0x34,
	Digit5: 0x35, Digit6: 0x36, Digit7: 0x37, Digit8: 0x38, Digit9: 0x39,

	F1: 0x70, F2: 0x71, F3: 0x72, F4: 0x73, F5: 0x74, F6: 0x75,
	F7: 0x76, F8: 0x77, F9: 0x78, F10: 0x79, F11: 0x7A, F12: 0x7B,
	F13: 0x7C, F14: 0x7D, F15: 0x7E, F16: 0x7F, F17: 0x80, F18: 0x81,
	F19: 0x82, F20: 0x83, F21: 0x84, F22: 0x85, F23: 0x86, F24: 0x87,

	Backquote: 0xC0, Backslash: 0xDC, BracketLeft: 0xDB, BracketRight: 0xDD,
	Comma: 0xBC, Equal: 0xBB, Minus: 0xBD, Period: 0xBE, Quote: 0xDE,
	Semicolon: 0xBA, Slash: 0xBF,

	Space: 0x20, Enter: 0x0D, Tab: 0x09, Escape: 0x1B, Backspace: 0x08,
	Delete: 0x2E, Insert: 0x2D, Home: 0x24, End: 0x23,
	PageUp: 0x21, PageDown: 0x22,

	ArrowLeft: 0x25, ArrowUp: 0x26, ArrowRight: 0x27, ArrowDown: 0x28,

	Numpad0: 0x60, Numpad1: 0x61, Numpad2: 0x62, Numpad3: 0x63,
	Numpad4: 0x64, Numpad5: 0x65, Numpad6: 0x66, Numpad7: 0x67,
	Numpad8: 0x68, Numpad9: 0x69,
	NumpadMultiply: 0x6A, NumpadAdd: 0x6B, NumpadSubtract: 0x6D,
	NumpadDecimal: 0x6E, NumpadDivide: 0x6F,

	CapsLock: 0x14, NumLock: 0x90, ScrollLock: 0x91, Pause: 0x13,
	PrintScreen: 0x2C, ContextMenu: 0x5D,

	AudioVolumeMute: 0xAD, AudioVolumeDown: 0xAE, AudioVolumeUp: 0xAF,
	MediaTrackNext: 0xB0, MediaTrackPrevious: 0xB1, MediaStop: 0xB2,
	MediaPlayPause: 0xB3,

	BrowserBack: 0xA6, BrowserForward: 0xA7, BrowserRefresh: 0xA8,
	BrowserSearch: 0xAA, BrowserHome: 0xAC,
}

var vkToCode = map[NativeKey]Code{}

var winMods = map[Modifiers]NativeMod{
	ModCtrl:  modWinControl,
	ModShift: modWinShift,
	ModAlt:   modWinAlt,
	ModSuper: modWinSuper,
}

var winModToBit = map[NativeMod]Modifiers{}

func init() {
	for c, vk := range vkCodes {
		vkToCode[vk] = c
	}
	for m, native := range winMods {
		winModToBit[native] = m
	}
}

// EncodeKey maps a Code to its virtual-key code. ok is false when the
// platform has no equivalent key (NumpadEnter has no distinct VK, for
// example).
func EncodeKey(c Code) (NativeKey, bool) {
	vk, ok := vkCodes[c]
	return vk, ok
}

// DecodeKey maps a virtual-key code back to its Code.
func DecodeKey(vk NativeKey) (Code, bool) {
	c, ok := vkToCode[vk]
	return c, ok
}

// EncodeMod maps a single modifier bit to its native flag.
func EncodeMod(m Modifiers) (NativeMod, bool) {
	native, ok := winMods[m]
	return native, ok
}

// DecodeMod maps exactly one native modifier flag back to a Modifiers
// bit. Multi-bit values are a set, not a single modifier, and decode as
// not-ok.
func DecodeMod(native NativeMod) (Modifiers, bool) {
	m, ok := winModToBit[native]
	return m, ok
}

// EncodeMods folds the whole set into a native bitfield via OR. ok is
// false when any member has no native flag on this platform.
func EncodeMods(m Modifiers) (NativeMod, bool) {
	var out NativeMod
	for _, bit := range m.Split() {
		native, ok := winMods[bit]
		if !ok {
			return 0, false
		}
		out |= native
	}
	return out, true
}

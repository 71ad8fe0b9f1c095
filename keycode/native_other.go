//go:build !windows

package keycode

import "golang.design/x/hotkey"

// NativeKey is the key type of golang.design/x/hotkey, which fronts the
// platform registration primitive on non-Windows targets.
type NativeKey = hotkey.Key

// NativeMod is a single golang.design/x/hotkey modifier value.
type NativeMod = hotkey.Modifier

var xKeys = map[Code]hotkey.Key{
	KeyA: hotkey.KeyA, KeyB: hotkey.KeyB, KeyC: hotkey.KeyC,
	KeyD: hotkey.KeyD, KeyE: hotkey.KeyE, KeyF: hotkey.KeyF,
	KeyG: hotkey.KeyG, KeyH: hotkey.KeyH, KeyI: hotkey.KeyI,
	KeyJ: hotkey.KeyJ, KeyK: hotkey.KeyK, KeyL: hotkey.KeyL,
	KeyM: hotkey.KeyM, KeyN: hotkey.KeyN, KeyO: hotkey.KeyO,
	KeyP: hotkey.KeyP, KeyQ: hotkey.KeyQ, KeyR: hotkey.KeyR,
	KeyS: hotkey.KeyS, KeyT: hotkey.KeyT, KeyU: hotkey.KeyU,
	KeyV: hotkey.KeyV, KeyW: hotkey.KeyW, KeyX: hotkey.KeyX,
	KeyY: hotkey.KeyY, KeyZ: hotkey.KeyZ,

	Digit0: hotkey.Key0, Digit1: hotkey.Key1, Digit2: hotkey.Key2,
	Digit3: hotkey.Key3, Digit4: hotkey.Key4, Digit5: hotkey.Key5,
	Digit6: hotkey.Key6, Digit7: hotkey.Key7, Digit8: hotkey.Key8,
	Digit9: hotkey.Key9,

	F1: hotkey.KeyF1, F2: hotkey.KeyF2, F3: hotkey.KeyF3,
	F4: hotkey.KeyF4, F5: hotkey.KeyF5, F6: hotkey.KeyF6,
	F7: hotkey.KeyF7, F8: hotkey.KeyF8, F9: hotkey.KeyF9,
	F10: hotkey.KeyF10, F11: hotkey.KeyF11, F12: hotkey.KeyF12,

	Space:  hotkey.KeySpace,
	Enter:  hotkey.KeyReturn,
	Tab:    hotkey.KeyTab,
	Escape: hotkey.KeyEscape,
	Delete: hotkey.KeyDelete,

	ArrowUp: hotkey.KeyUp, ArrowDown: hotkey.KeyDown,
	ArrowLeft: hotkey.KeyLeft, ArrowRight: hotkey.KeyRight,
}

var xKeyToCode = map[hotkey.Key]Code{}

var xModToBit = map[hotkey.Modifier]Modifiers{}

func init() {
	for c, k := range xKeys {
		xKeyToCode[k] = c
	}
	for m, native := range xMods {
		xModToBit[native] = m
	}
}

// EncodeKey maps a Code to the native key value. ok is false when this
// platform's table has no equivalent (media keys on X11, for example).
func EncodeKey(c Code) (NativeKey, bool) {
	k, ok := xKeys[c]
	return k, ok
}

// DecodeKey maps a native key value back to its Code.
func DecodeKey(k NativeKey) (Code, bool) {
	c, ok := xKeyToCode[k]
	return c, ok
}

// EncodeMod maps a single modifier bit to its native value. The per-OS
// table lives in native_linux.go / native_darwin.go.
func EncodeMod(m Modifiers) (NativeMod, bool) {
	native, ok := xMods[m]
	return native, ok
}

// DecodeMod maps exactly one native modifier value back to a Modifiers
// bit.
func DecodeMod(native NativeMod) (Modifiers, bool) {
	m, ok := xModToBit[native]
	return m, ok
}

// EncodeMods expands the set into the slice form the native API takes.
// ok is false when any member has no native value on this platform.
func EncodeMods(m Modifiers) ([]NativeMod, bool) {
	var out []NativeMod
	for _, bit := range m.Split() {
		native, ok := xMods[bit]
		if !ok {
			return nil, false
		}
		out = append(out, native)
	}
	return out, true
}

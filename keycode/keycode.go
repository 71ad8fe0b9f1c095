// Package keycode holds the canonical key and modifier identity model:
// one token per physical key, bidirectional mapping to the platform's
// native key codes, and deterministic hotkey identifiers.
package keycode

// Code identifies a physical key. Tokens follow the W3C UI-Events code
// names ("KeyA", "Digit5", "ArrowUp") so they stay stable across
// platforms and keyboard layouts.
type Code uint16

const (
	CodeInvalid Code = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	Backquote
	Backslash
	BracketLeft
	BracketRight
	Comma
	Equal
	Minus
	Period
	Quote
	Semicolon
	Slash

	Space
	Enter
	Tab
	Escape
	Backspace
	Delete
	Insert
	Home
	End
	PageUp
	PageDown

	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight

	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadSubtract
	NumpadMultiply
	NumpadDivide
	NumpadDecimal
	NumpadEnter

	CapsLock
	NumLock
	ScrollLock
	Pause
	PrintScreen
	ContextMenu

	AudioVolumeUp
	AudioVolumeDown
	AudioVolumeMute
	MediaPlayPause
	MediaStop
	MediaTrackNext
	MediaTrackPrevious

	BrowserBack
	BrowserForward
	BrowserHome
	BrowserRefresh
	BrowserSearch

	codeMax // sentinel, keep last
)

var tokens = map[Code]string{
	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE",
	KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ",
	KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO",
	KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY",
	KeyZ: "KeyZ",

	Digit0: "Digit0", Digit1: "Digit1", Digit2: "Digit2", Digit3: "Digit3",
	Digit4: "Digit4", Digit5: "Digit5", Digit6: "Digit6", Digit7: "Digit7",
	Digit8: "Digit8", Digit9: "Digit9",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	F13: "F13", F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18",
	F19: "F19", F20: "F20", F21: "F21", F22: "F22", F23: "F23", F24: "F24",

	Backquote: "Backquote", Backslash: "Backslash",
	BracketLeft: "BracketLeft", BracketRight: "BracketRight",
	Comma: "Comma", Equal: "Equal", Minus: "Minus", Period: "Period",
	Quote: "Quote", Semicolon: "Semicolon", Slash: "Slash",

	Space: "Space", Enter: "Enter", Tab: "Tab", Escape: "Escape",
	Backspace: "Backspace", Delete: "Delete", Insert: "Insert",
	Home: "Home", End: "End", PageUp: "PageUp", PageDown: "PageDown",

	ArrowUp: "ArrowUp", ArrowDown: "ArrowDown",
	ArrowLeft: "ArrowLeft", ArrowRight: "ArrowRight",

	Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2",
	Numpad3: "Numpad3", Numpad4: "Numpad4", Numpad5: "Numpad5",
	Numpad6: "Numpad6", Numpad7: "Numpad7", Numpad8: "Numpad8",
	Numpad9: "Numpad9",
	NumpadAdd: "NumpadAdd", NumpadSubtract: "NumpadSubtract",
	NumpadMultiply: "NumpadMultiply", NumpadDivide: "NumpadDivide",
	NumpadDecimal: "NumpadDecimal", NumpadEnter: "NumpadEnter",

	CapsLock: "CapsLock", NumLock: "NumLock", ScrollLock: "ScrollLock",
	Pause: "Pause", PrintScreen: "PrintScreen", ContextMenu: "ContextMenu",

	AudioVolumeUp: "AudioVolumeUp", AudioVolumeDown: "AudioVolumeDown",
	AudioVolumeMute: "AudioVolumeMute", MediaPlayPause: "MediaPlayPause",
	MediaStop: "MediaStop", MediaTrackNext: "MediaTrackNext",
	MediaTrackPrevious: "MediaTrackPrevious",

	BrowserBack: "BrowserBack", BrowserForward: "BrowserForward",
	BrowserHome: "BrowserHome", BrowserRefresh: "BrowserRefresh",
	BrowserSearch: "BrowserSearch",
}

var tokenToCode = map[string]Code{}

func init() {
	for c, tok := range tokens {
		tokenToCode[tok] = c
	}
}

// String returns the canonical token, or "" for an unknown code.
func (c Code) String() string {
	return tokens[c]
}

// Valid reports whether c names a known key.
func (c Code) Valid() bool {
	_, ok := tokens[c]
	return ok
}

// Parse resolves a canonical token back to its Code.
func Parse(token string) (Code, bool) {
	c, ok := tokenToCode[token]
	return c, ok
}

// Codes returns every known code in declaration order. Used by embedding
// hosts to enumerate what can be registered.
func Codes() []Code {
	out := make([]Code, 0, len(tokens))
	for c := Code(1); c < codeMax; c++ {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

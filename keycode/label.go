package keycode

var labels = map[Code]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	Digit0: "0", Digit1: "1", Digit2: "2", Digit3: "3", Digit4: "4",
	Digit5: "5", Digit6: "6", Digit7: "7", Digit8: "8", Digit9: "9",

	F1: "f1", F2: "f2", F3: "f3", F4: "f4", F5: "f5", F6: "f6",
	F7: "f7", F8: "f8", F9: "f9", F10: "f10", F11: "f11", F12: "f12",
	F13: "f13", F14: "f14", F15: "f15", F16: "f16", F17: "f17", F18: "f18",
	F19: "f19", F20: "f20", F21: "f21", F22: "f22", F23: "f23", F24: "f24",

	Backquote: "`", Backslash: "\\", BracketLeft: "[", BracketRight: "]",
	Comma: ",", Equal: "=", Minus: "-", Period: ".", Quote: "\"",
	Semicolon: ";", Slash: "/",

	Space: "space", Enter: "enter", Tab: "tab", Escape: "esc",
	Backspace: "backspace", Delete: "del", Insert: "ins",
	Home: "home", End: "end", PageUp: "pgup", PageDown: "pgdn",

	ArrowUp: "up", ArrowDown: "down", ArrowLeft: "left", ArrowRight: "right",
}

// Label returns a short human-readable label for display purposes.
// Not every code has one; callers fall back to the token.
func Label(c Code) (string, bool) {
	l, ok := labels[c]
	return l, ok
}

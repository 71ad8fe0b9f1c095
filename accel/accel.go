// Package accel parses human-written accelerator strings like
// "ctrl+shift+k" into the canonical descriptor form and back.
package accel

import (
	"fmt"
	"strings"

	"keybridge/keycode"
)

var modAliases = map[string]keycode.Modifiers{
	"ctrl":    keycode.ModCtrl,
	"control": keycode.ModCtrl,
	"shift":   keycode.ModShift,
	"alt":     keycode.ModAlt,
	"option":  keycode.ModAlt,
	"super":   keycode.ModSuper,
	"win":     keycode.ModSuper,
	"cmd":     keycode.ModSuper,
	"command": keycode.ModSuper,
	"meta":    keycode.ModMeta,
}

var keyAliases = map[string]keycode.Code{
	"space":     keycode.Space,
	"enter":     keycode.Enter,
	"return":    keycode.Enter,
	"tab":       keycode.Tab,
	"esc":       keycode.Escape,
	"escape":    keycode.Escape,
	"backspace": keycode.Backspace,
	"del":       keycode.Delete,
	"delete":    keycode.Delete,
	"ins":       keycode.Insert,
	"insert":    keycode.Insert,
	"home":      keycode.Home,
	"end":       keycode.End,
	"pgup":      keycode.PageUp,
	"pageup":    keycode.PageUp,
	"pgdn":      keycode.PageDown,
	"pagedown":  keycode.PageDown,
	"up":        keycode.ArrowUp,
	"down":      keycode.ArrowDown,
	"left":      keycode.ArrowLeft,
	"right":     keycode.ArrowRight,
	"comma":     keycode.Comma,
	"period":    keycode.Period,
	"minus":     keycode.Minus,
	"equal":     keycode.Equal,
	"slash":     keycode.Slash,
	"semicolon": keycode.Semicolon,

	// Punctuation by its printed label, matching keycode.Label output.
	"`": keycode.Backquote, "\\": keycode.Backslash,
	"[": keycode.BracketLeft, "]": keycode.BracketRight,
	",": keycode.Comma, "=": keycode.Equal, "-": keycode.Minus,
	".": keycode.Period, "\"": keycode.Quote, ";": keycode.Semicolon,
	"/": keycode.Slash,
}

// Parse splits "ctrl+shift+k" into its modifier set and key. The last
// segment is the key; everything before it must be a modifier. Case and
// surrounding whitespace are ignored.
func Parse(s string) (keycode.Modifiers, keycode.Code, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 || strings.TrimSpace(s) == "" {
		return 0, keycode.CodeInvalid, fmt.Errorf("empty accelerator")
	}

	var mods keycode.Modifiers
	for _, raw := range parts[:len(parts)-1] {
		name := strings.ToLower(strings.TrimSpace(raw))
		m, ok := modAliases[name]
		if !ok {
			return 0, keycode.CodeInvalid, fmt.Errorf("unknown modifier %q in %q", raw, s)
		}
		mods |= m
	}

	keyPart := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	key, err := parseKey(keyPart)
	if err != nil {
		return 0, keycode.CodeInvalid, fmt.Errorf("%v in %q", err, s)
	}
	return mods, key, nil
}

func parseKey(s string) (keycode.Code, error) {
	if c, ok := keyAliases[s]; ok {
		return c, nil
	}
	if len(s) == 1 {
		ch := s[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			tok := "Key" + strings.ToUpper(s)
			c, _ := keycode.Parse(tok)
			return c, nil
		case ch >= '0' && ch <= '9':
			c, _ := keycode.Parse("Digit" + s)
			return c, nil
		}
	}
	// F-keys: f1 .. f24.
	if len(s) >= 2 && s[0] == 'f' {
		if c, ok := keycode.Parse("F" + s[1:]); ok {
			return c, nil
		}
	}
	// Fall back to the canonical token itself ("MediaPlayPause").
	for _, c := range keycode.Codes() {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return keycode.CodeInvalid, fmt.Errorf("unknown key %q", s)
}

// Format renders the combination back into the lowercase "ctrl+shift+k"
// convention. Inverse of Parse for everything Parse accepts.
func Format(mods keycode.Modifiers, key keycode.Code) string {
	var parts []string
	if mods.Has(keycode.ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if mods.Has(keycode.ModShift) {
		parts = append(parts, "shift")
	}
	if mods.Has(keycode.ModAlt) {
		parts = append(parts, "alt")
	}
	if mods.Has(keycode.ModSuper) {
		parts = append(parts, "super")
	}
	if mods.Has(keycode.ModMeta) {
		parts = append(parts, "meta")
	}

	if label, ok := keycode.Label(key); ok {
		parts = append(parts, label)
	} else {
		parts = append(parts, key.String())
	}
	return strings.Join(parts, "+")
}

package accel

import (
	"testing"

	"keybridge/keycode"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		mods keycode.Modifiers
		key  keycode.Code
	}{
		{"ctrl+a", keycode.ModCtrl, keycode.KeyA},
		{"Ctrl+Shift+K", keycode.ModCtrl | keycode.ModShift, keycode.KeyK},
		{"alt+f4", keycode.ModAlt, keycode.F4},
		{"super+space", keycode.ModSuper, keycode.Space},
		{"cmd+c", keycode.ModSuper, keycode.KeyC},
		{"ctrl+shift+alt+7", keycode.ModCtrl | keycode.ModShift | keycode.ModAlt, keycode.Digit7},
		{"f12", 0, keycode.F12},
		{"ctrl+,", keycode.ModCtrl, keycode.Comma},
		{"ctrl + shift + p", keycode.ModCtrl | keycode.ModShift, keycode.KeyP},
		{"ctrl+MediaPlayPause", keycode.ModCtrl, keycode.MediaPlayPause},
	}
	for _, tc := range cases {
		mods, key, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if mods != tc.mods || key != tc.key {
			t.Errorf("Parse(%q) = %v+%v, want %v+%v", tc.in, mods, key, tc.mods, tc.key)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "ctrl+", "bogus+a", "ctrl+notakey", "+"} {
		if _, _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	cases := []string{
		"ctrl+a",
		"ctrl+shift+k",
		"alt+f4",
		"super+space",
		"ctrl+,",
		"f12",
	}
	for _, in := range cases {
		mods, key, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		out := Format(mods, key)
		mods2, key2, err := Parse(out)
		if err != nil {
			t.Fatalf("Parse(Format(%q)) = Parse(%q): %v", in, out, err)
		}
		if mods2 != mods || key2 != key {
			t.Errorf("round trip %q -> %q changed meaning", in, out)
		}
	}
}

//go:build linux

package keycode

import "golang.design/x/hotkey"

// X11 modifier masks. Alt is Mod1, Super is Mod4.
var xMods = map[Modifiers]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.Mod1,
	ModSuper: hotkey.Mod4,
}

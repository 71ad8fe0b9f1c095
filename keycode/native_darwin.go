//go:build darwin

package keycode

import "golang.design/x/hotkey"

var xMods = map[Modifiers]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModOption,
	ModSuper: hotkey.ModCmd,
}

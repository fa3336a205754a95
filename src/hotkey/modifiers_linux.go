package hotkey

import xhotkey "golang.design/x/hotkey"

// Mod1 is Alt and Mod4 is Super on common X11 keymaps.
var nativeModifiers = map[string]xhotkey.Modifier{
	"ctrl":  xhotkey.ModCtrl,
	"shift": xhotkey.ModShift,
	"alt":   xhotkey.Mod1,
	"cmd":   xhotkey.Mod4,
}

package hotkey

import xhotkey "golang.design/x/hotkey"

var nativeModifiers = map[string]xhotkey.Modifier{
	"ctrl":  xhotkey.ModCtrl,
	"shift": xhotkey.ModShift,
	"alt":   xhotkey.ModOption,
	"cmd":   xhotkey.ModCmd,
}

package hotkey

import (
	"fmt"
	"strings"
)

// DefaultChord is the assistant's global shortcut.
const DefaultChord = "Ctrl+Shift+Space"

// Chord is a parsed key combination: zero or more modifiers plus one key.
type Chord struct {
	Modifiers []string
	Key       string
}

func (c Chord) String() string {
	parts := append(append([]string(nil), c.Modifiers...), c.Key)
	return strings.Join(parts, "+")
}

// ParseChord parses "Ctrl+Shift+Space" style strings.
func ParseChord(s string) (Chord, error) {
	keys := parseHotkey(s)
	var c Chord
	for _, k := range keys {
		switch k {
		case "ctrl", "alt", "shift", "cmd":
			c.Modifiers = append(c.Modifiers, k)
		case "":
			return Chord{}, fmt.Errorf("empty key in hotkey %q", s)
		default:
			if c.Key != "" {
				return Chord{}, fmt.Errorf("hotkey %q has more than one non-modifier key", s)
			}
			c.Key = k
		}
	}
	if c.Key == "" {
		return Chord{}, fmt.Errorf("hotkey %q has no key", s)
	}
	if _, ok := nativeKeys[c.Key]; !ok {
		return Chord{}, fmt.Errorf("key %q in hotkey %q cannot be registered globally", c.Key, s)
	}
	return c, nil
}

// Rawcodes returns the Windows virtual key codes for a key name, nil when unknown.
func Rawcodes(name string) []uint16 { return keyNameToRawcodes(name) }

// parseHotkey converts a hotkey string like "Ctrl+Alt+q" to normalized key names
func parseHotkey(hotkeyConfig string) []string {
	// Convert to lowercase and split by +
	parts := strings.Split(strings.ToLower(hotkeyConfig), "+")
	var keys []string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "ctrl":
			keys = append(keys, "ctrl")
		case "alt":
			keys = append(keys, "alt")
		case "shift":
			keys = append(keys, "shift")
		case "win", "cmd", "super":
			keys = append(keys, "cmd")
		default:
			// Regular key
			keys = append(keys, part)
		}
	}

	return keys
}

// keyNameToRawcodes maps a key name to its Windows virtual key codes.
// Modifiers return both the left and right variants.
func keyNameToRawcodes(keyName string) []uint16 {
	return rawcodes[strings.ToLower(strings.TrimSpace(keyName))]
}

// rawcodes covers the modifiers plus every key in nativeKeys.
var rawcodes = func() map[string][]uint16 {
	m := map[string][]uint16{
		"ctrl":  {162, 163}, // VK_LCONTROL, VK_RCONTROL
		"alt":   {164, 165}, // VK_LMENU, VK_RMENU
		"shift": {160, 161}, // VK_LSHIFT, VK_RSHIFT
		"win":   {91, 92},   // VK_LWIN, VK_RWIN
		"cmd":   {91, 92},
		"super": {91, 92},

		"space":  {32},
		"enter":  {13},
		"return": {13},
		"esc":    {27},
		"escape": {27},
		"tab":    {9},
	}
	for i := 0; i < 26; i++ {
		m[string(rune('a'+i))] = []uint16{uint16(65 + i)}
	}
	for i := 0; i < 10; i++ {
		m[string(rune('0'+i))] = []uint16{uint16(48 + i)}
	}
	for i := 1; i <= 12; i++ {
		m[fmt.Sprintf("f%d", i)] = []uint16{uint16(111 + i)} // VK_F1 = 112
	}
	return m
}()

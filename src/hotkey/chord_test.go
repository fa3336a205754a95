package hotkey

import (
	"testing"
)

func TestRawcodes(t *testing.T) {
	tests := []struct {
		keyName  string
		expected []uint16
	}{
		// Modifier keys
		{"ctrl", []uint16{162, 163}},
		{"alt", []uint16{164, 165}},
		{"shift", []uint16{160, 161}},
		{"win", []uint16{91, 92}},
		{"cmd", []uint16{91, 92}},
		{"super", []uint16{91, 92}},

		// Letter keys
		{"q", []uint16{81}},
		{"e", []uint16{69}},
		{"o", []uint16{79}},
		{"t", []uint16{84}},

		// Number keys
		{"0", []uint16{48}},
		{"1", []uint16{49}},
		{"9", []uint16{57}},

		// Function keys
		{"f1", []uint16{112}},
		{"f12", []uint16{123}},
		{"f13", nil},

		// Special keys
		{"space", []uint16{32}},
		{"enter", []uint16{13}},
		{"esc", []uint16{27}},

		// Unknown or unregistrable keys
		{"unknown", nil},
		{"home", nil},
	}

	for _, tt := range tests {
		t.Run(tt.keyName, func(t *testing.T) {
			result := Rawcodes(tt.keyName)
			if len(result) != len(tt.expected) {
				t.Errorf("keyNameToRawcodes(%q) returned %d rawcodes, expected %d",
					tt.keyName, len(result), len(tt.expected))
				return
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("keyNameToRawcodes(%q)[%d] = %d, expected %d",
						tt.keyName, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Ctrl+Alt+Q", []string{"ctrl", "alt", "q"}},
		{"Ctrl+Shift+O", []string{"ctrl", "shift", "o"}},
		{"Ctrl+alt+e", []string{"ctrl", "alt", "e"}},
		{"Alt+F4", []string{"alt", "f4"}},
		{"Ctrl+Shift+F13", []string{"ctrl", "shift", "f13"}},
		{"Alt+F24", []string{"alt", "f24"}},
		{"Ctrl+Shift+T", []string{"ctrl", "shift", "t"}},
		{"Ctrl+Win+E", []string{"ctrl", "cmd", "e"}},
		{"Win+Shift+S", []string{"cmd", "shift", "s"}},
		{"Super+Alt+T", []string{"cmd", "alt", "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseHotkey(tt.input)
			if len(result) != len(tt.expected) {
				t.Errorf("parseHotkey(%q) returned %d keys, expected %d",
					tt.input, len(result), len(tt.expected))
				return
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("parseHotkey(%q)[%d] = %q, expected %q",
						tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestRawcodesCoverNativeKeys(t *testing.T) {
	for name := range nativeKeys {
		if len(Rawcodes(name)) == 0 {
			t.Errorf("no rawcodes for registrable key %q", name)
		}
	}
	for name := range rawcodes {
		switch name {
		case "ctrl", "alt", "shift", "win", "cmd", "super":
			continue
		}
		if _, ok := nativeKeys[name]; !ok {
			t.Errorf("rawcodes has %q which cannot be registered", name)
		}
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{DefaultChord, "ctrl+shift+space", false},
		{"cmd+esc", "cmd+esc", false},
		{"F9", "f9", false},
		{"Ctrl+Shift", "", true},
		{"Ctrl+A+B", "", true},
		{"Ctrl++Q", "", true},
		{"Ctrl+Banana", "", true},
		{"Ctrl+Home", "", true},
		{"Alt+F13", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseChord(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseChord(%q) expected error, got %v", tt.input, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChord(%q) unexpected error: %v", tt.input, err)
			}
			if c.String() != tt.want {
				t.Errorf("ParseChord(%q) = %q, expected %q", tt.input, c.String(), tt.want)
			}
		})
	}
}

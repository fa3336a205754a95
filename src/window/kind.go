package window

import "byoa-assistant/src/platform"

// Kind distinguishes the main window from the hotkey popup.
type Kind int

const (
	Main Kind = iota
	Popup
)

func (k Kind) String() string {
	if k == Popup {
		return "popup"
	}
	return "main"
}

// Title is shown on both windows.
const Title = "Build Your Own Assistant"

// Event names delivered to page scripts.
const (
	EventFocusChange = "on-focus-change"
)

var popupBackground = platform.Color{R: 255, G: 255, B: 255, A: 100}

// DefaultSize returns the initial size of a window of kind k.
func DefaultSize(k Kind, debug bool) platform.Size {
	switch {
	case k == Main && debug:
		return platform.Size{Width: 1000, Height: 600}
	case k == Main:
		return platform.Size{Width: 1500, Height: 900}
	case debug:
		return platform.Size{Width: 750, Height: 450}
	default:
		return platform.Size{Width: 1000, Height: 600}
	}
}

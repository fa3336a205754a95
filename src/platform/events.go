package platform

import "fmt"

// EventKind identifies a platform event delivered to the message sink.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventHotkey
	EventTrayClick
	EventMenuCommand
	EventKeyDown
	EventSecondInstance
)

func (k EventKind) String() string {
	switch k {
	case EventHotkey:
		return "Hotkey"
	case EventTrayClick:
		return "TrayClick"
	case EventMenuCommand:
		return "MenuCommand"
	case EventKeyDown:
		return "KeyDown"
	case EventSecondInstance:
		return "SecondInstance"
	default:
		return "Unknown"
	}
}

// MenuCommand is a tray menu selection.
type MenuCommand int

const (
	CommandNone MenuCommand = iota
	CommandSettings
	CommandQuit
)

func (c MenuCommand) String() string {
	switch c {
	case CommandSettings:
		return "Settings"
	case CommandQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Event is the typed replacement for raw OS window messages.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	HotkeyID int
	Command  MenuCommand
	Key      string
}

func (e Event) String() string {
	switch e.Kind {
	case EventHotkey:
		return fmt.Sprintf("Hotkey(%d)", e.HotkeyID)
	case EventMenuCommand:
		return fmt.Sprintf("MenuCommand(%s)", e.Command)
	case EventKeyDown:
		return fmt.Sprintf("KeyDown(%s)", e.Key)
	default:
		return e.Kind.String()
	}
}

// Hotkey builds a hotkey event for the registration id.
func Hotkey(id int) Event { return Event{Kind: EventHotkey, HotkeyID: id} }

// Menu builds a menu command event.
func Menu(cmd MenuCommand) Event { return Event{Kind: EventMenuCommand, Command: cmd} }

// KeyDown builds a key-down event for a normalized key name ("esc", "space", ...).
func KeyDown(key string) Event { return Event{Kind: EventKeyDown, Key: key} }

// Poster accepts events from platform callbacks. Implementations must not block.
type Poster interface {
	Post(ev Event) bool
}

// PostFunc adapts a function to Poster.
type PostFunc func(ev Event) bool

func (f PostFunc) Post(ev Event) bool { return f(ev) }

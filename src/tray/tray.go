package tray

import (
	"fmt"
	"log/slog"
	"sync"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// Tooltip is shown when hovering the tray icon.
const Tooltip = "Build Your Own Assistant"

// MenuItem is one entry of the tray menu.
type MenuItem struct {
	Label     string
	Command   platform.MenuCommand
	Separator bool
}

// Menu is the tray menu: Settings, separator, Quit.
var Menu = []MenuItem{
	{Label: "Settings", Command: platform.CommandSettings},
	{Separator: true},
	{Label: "Quit", Command: platform.CommandQuit},
}

// Backend draws the tray icon. Clicks and menu selections are posted to sink
// as EventTrayClick and EventMenuCommand.
type Backend interface {
	Show(icon []byte, tooltip string, items []MenuItem, sink platform.Poster) error
	OpenMenu()
	Remove()
}

// Actions are what the menu entries do.
type Actions interface {
	ShowSettings()
	Quit()
}

type Options struct {
	Backend  Backend
	Sink     platform.Poster
	Actions  Actions
	IconPath string
	Logger   *slog.Logger
}

// Controller owns the tray icon and routes its events.
type Controller struct {
	opts Options
	log  *slog.Logger

	mu     sync.Mutex
	active bool
}

func New(opts Options) *Controller {
	return &Controller{opts: opts, log: logutil.Component(opts.Logger, "tray")}
}

// Init adds the icon and menu. Calling it again while active is a no-op.
func (c *Controller) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return nil
	}
	if c.opts.Backend == nil {
		return fmt.Errorf("tray: no backend")
	}

	icon := FallbackIcon()
	if c.opts.IconPath != "" {
		data, err := LoadIcon(c.opts.IconPath)
		if err != nil {
			c.log.Warn("using fallback icon", "error", err)
		} else {
			icon = data
		}
	}

	if err := c.opts.Backend.Show(icon, Tooltip, Menu, c.opts.Sink); err != nil {
		return fmt.Errorf("tray: %w", err)
	}
	c.active = true
	c.log.Info("tray icon added")
	return nil
}

// OnTrigger handles tray clicks and menu commands.
func (c *Controller) OnTrigger(ev platform.Event) bool {
	switch ev.Kind {
	case platform.EventTrayClick:
		if !c.Active() {
			return false
		}
		c.opts.Backend.OpenMenu()
		return true
	case platform.EventMenuCommand:
		switch ev.Command {
		case platform.CommandSettings:
			c.log.Info("settings selected")
			if c.opts.Actions != nil {
				c.opts.Actions.ShowSettings()
			}
			return true
		case platform.CommandQuit:
			c.log.Info("quit selected")
			if c.opts.Actions != nil {
				c.opts.Actions.Quit()
			}
			return true
		}
	}
	return false
}

// Active reports whether the icon is shown.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Cleanup removes the icon and menu. Idempotent.
func (c *Controller) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	c.opts.Backend.Remove()
	c.log.Info("tray icon removed")
}

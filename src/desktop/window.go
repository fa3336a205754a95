package desktop

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"byoa-assistant/src/platform"
)

// nativeWindow implements platform.NativeWindow over a Wails webview window.
type nativeWindow struct {
	w        *application.WebviewWindow
	quitting *atomic.Bool
	closing  atomic.Bool
	log      *slog.Logger

	mu      sync.Mutex
	onClose func() bool
	onFocus func(bool)
}

func newNativeWindow(w *application.WebviewWindow, quitting *atomic.Bool, logger *slog.Logger) *nativeWindow {
	n := &nativeWindow{w: w, quitting: quitting, log: logger}
	w.RegisterHook(events.Common.WindowClosing, n.closingHook)
	w.OnWindowEvent(events.Common.WindowFocus, func(*application.WindowEvent) { n.focusChanged(true) })
	w.OnWindowEvent(events.Common.WindowLostFocus, func(*application.WindowEvent) { n.focusChanged(false) })
	return n
}

func (n *nativeWindow) closingHook(e *application.WindowEvent) {
	if n.quitting.Load() || n.closing.Load() {
		return
	}
	n.mu.Lock()
	fn := n.onClose
	n.mu.Unlock()
	if fn != nil && fn() {
		e.Cancel()
	}
}

func (n *nativeWindow) focusChanged(focused bool) {
	n.mu.Lock()
	fn := n.onFocus
	n.mu.Unlock()
	if fn != nil {
		fn(focused)
	}
}

func (n *nativeWindow) ID() uint                  { return n.w.ID() }
func (n *nativeWindow) SetTitle(title string)     { n.w.SetTitle(title) }
func (n *nativeWindow) SetSize(width, height int) { n.w.SetSize(width, height) }
func (n *nativeWindow) SetPosition(x, y int)      { n.w.SetPosition(x, y) }
func (n *nativeWindow) Show()                     { n.w.Show() }
func (n *nativeWindow) Hide()                     { n.w.Hide() }
func (n *nativeWindow) Focus()                    { n.w.Focus() }
func (n *nativeWindow) SetURL(url string)         { n.w.SetURL(url) }

func (n *nativeWindow) Size() platform.Size {
	width, height := n.w.Size()
	return platform.Size{Width: width, Height: height}
}

// Close destroys the window, bypassing the close hook.
func (n *nativeWindow) Close() {
	n.closing.Store(true)
	n.w.Close()
}

func (n *nativeWindow) SetDecoration(d platform.Decoration) {
	frameless, resizable := decorationFlags(d)
	n.w.SetFrameless(frameless)
	n.w.SetResizable(resizable)
}

func (n *nativeWindow) SetBackground(c platform.Color) {
	n.w.SetBackgroundColour(application.NewRGBA(c.R, c.G, c.B, c.A))
}

func (n *nativeWindow) SetSkipTaskbar(skip bool) {
	if err := setSkipTaskbar(n.w, skip); err != nil {
		n.log.Warn("failed to change taskbar visibility", "skip", skip, "error", err)
	}
}

func (n *nativeWindow) OnClose(fn func() bool) {
	n.mu.Lock()
	n.onClose = fn
	n.mu.Unlock()
}

func (n *nativeWindow) OnFocusChange(fn func(bool)) {
	n.mu.Lock()
	n.onFocus = fn
	n.mu.Unlock()
}

// ExecJS queues js on the window's webview. Script errors surface in the
// webview console, not here.
func (n *nativeWindow) ExecJS(js string) error {
	n.w.ExecJS(js)
	return nil
}

// decorationFlags maps chrome levels to Wails window flags: Partial keeps a
// resize border without a title bar, None has neither.
func decorationFlags(d platform.Decoration) (frameless, resizable bool) {
	switch d {
	case platform.DecorationPartial:
		return true, true
	case platform.DecorationNone:
		return true, false
	default:
		return false, true
	}
}

// Extended window styles that decide taskbar and Alt+Tab presence.
const (
	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000
)

func taskbarStyle(style uintptr, skip bool) uintptr {
	if skip {
		return style&^wsExAppWindow | wsExToolWindow
	}
	return style&^wsExToolWindow | wsExAppWindow
}

package window

import (
	"log/slog"
	"sync"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
	"byoa-assistant/src/webview"
)

// EscapeHook delivers Escape presses while installed by at least one owner.
type EscapeHook interface {
	Install(owner uint)
	Uninstall(owner uint)
}

type Options struct {
	Kind  Kind
	Debug bool
	// URL is loaded into the webview; "" leaves the webview empty.
	URL      string
	Pointer  platform.Pointer
	Hook     EscapeHook
	Registry *Registry
	Binder   platform.Binder
	Bindings map[string]any
	Logger   *slog.Logger
}

// Wrapper owns one native window and its webview. Closing the window hides it;
// it is only destroyed by Release.
type Wrapper struct {
	id       uint
	kind     Kind
	native   platform.NativeWindow
	webview  *webview.Wrapper
	pointer  platform.Pointer
	hook     EscapeHook
	registry *Registry
	log      *slog.Logger

	mu       sync.Mutex
	visible  bool
	released bool
}

// New wraps native, applies the kind's defaults and loads opts.URL.
func New(native platform.NativeWindow, opts Options) *Wrapper {
	w := &Wrapper{
		id:       native.ID(),
		kind:     opts.Kind,
		native:   native,
		pointer:  opts.Pointer,
		hook:     opts.Hook,
		registry: opts.Registry,
		log:      logutil.Component(opts.Logger, "window").With("kind", opts.Kind.String()),
	}
	w.webview = webview.New(native, opts.Binder, opts.Bindings, opts.Logger)

	size := DefaultSize(opts.Kind, opts.Debug)
	native.SetTitle(Title)
	native.SetSize(size.Width, size.Height)
	native.OnClose(func() bool {
		w.Hide()
		return true
	})
	if w.kind == Popup {
		native.SetDecoration(platform.DecorationNone)
		native.SetBackground(popupBackground)
	}
	native.OnFocusChange(w.onFocusChange)

	if w.registry != nil {
		w.registry.add(w)
	}
	if opts.URL != "" {
		w.webview.Init(opts.URL)
	} else {
		w.log.Warn("no view URL, window left blank")
	}
	return w
}

func (w *Wrapper) ID() uint                  { return w.id }
func (w *Wrapper) Kind() Kind                { return w.kind }
func (w *Wrapper) Webview() *webview.Wrapper { return w.webview }

// Show brings the window up with focus. The popup is first moved to the
// cursor, kept off the taskbar, and gets its Escape hook.
func (w *Wrapper) Show() {
	if w.isReleased() {
		return
	}
	if w.kind == Popup {
		w.Move()
		w.native.SetSkipTaskbar(true)
	}
	w.native.Show()
	w.native.Focus()
	w.setVisible(true)

	if w.kind == Popup {
		w.native.SetDecoration(platform.DecorationPartial)
		w.native.SetBackground(popupBackground)
		if w.hook != nil {
			w.hook.Install(w.id)
		}
	}
}

// Hide hides the window. Idempotent.
func (w *Wrapper) Hide() {
	if w.isReleased() {
		return
	}
	w.native.Hide()
	w.setVisible(false)
	if w.kind == Popup && w.hook != nil {
		w.hook.Uninstall(w.id)
	}
}

// Move places the popup at the cursor, clamped to the work area of the
// monitor under it. No-op for the main window.
func (w *Wrapper) Move() {
	if w.kind != Popup || w.pointer == nil || w.isReleased() {
		return
	}
	cursor, err := w.pointer.CursorPosition()
	if err != nil {
		w.log.Warn("cursor position unavailable", "error", err)
		return
	}
	size := w.native.Size()
	area, err := w.pointer.WorkArea(cursor)
	if err != nil {
		w.native.SetPosition(cursor.X, cursor.Y)
		return
	}
	pos := Place(cursor, size, area)
	w.native.SetPosition(pos.X, pos.Y)
}

// Resize sets the window size. animate is accepted for API compatibility and ignored.
func (w *Wrapper) Resize(width, height int, animate bool) {
	if w.isReleased() {
		return
	}
	w.native.SetSize(width, height)
}

// SendEventToWebview delivers name/data to the page's __nativeCallback.
func (w *Wrapper) SendEventToWebview(name, data string) {
	if w.webview == nil || w.isReleased() {
		return
	}
	w.webview.TriggerEvent(name, data)
}

// IsVisible reports the cached visibility flag.
func (w *Wrapper) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Release destroys the native window. Only used at final shutdown.
func (w *Wrapper) Release() {
	w.mu.Lock()
	if w.released {
		w.mu.Unlock()
		return
	}
	w.released = true
	w.visible = false
	w.mu.Unlock()

	if w.kind == Popup && w.hook != nil {
		w.hook.Uninstall(w.id)
	}
	if w.registry != nil {
		w.registry.remove(w.id)
	}
	w.native.Close()
}

func (w *Wrapper) onFocusChange(focused bool) {
	if w.registry != nil {
		w.registry.noteFocus(w.id, focused)
	}
	if w.kind != Popup || w.isReleased() {
		return
	}
	if focused {
		w.setVisible(true)
		w.SendEventToWebview(EventFocusChange, "true")
		return
	}
	if !w.IsVisible() {
		return
	}
	w.Hide()
	w.SendEventToWebview(EventFocusChange, "false")
}

func (w *Wrapper) setVisible(v bool) {
	w.mu.Lock()
	w.visible = v
	w.mu.Unlock()
}

func (w *Wrapper) isReleased() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.released
}

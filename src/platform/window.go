package platform

// Decoration is the amount of native window chrome.
type Decoration int

const (
	DecorationFull Decoration = iota
	DecorationPartial
	DecorationNone
)

// NativeWindow is the per-OS capability behind a window wrapper.
// Implementations must be safe to call from any goroutine.
type NativeWindow interface {
	ID() uint
	SetTitle(title string)
	SetSize(width, height int)
	Size() Size
	SetPosition(x, y int)
	Show()
	Hide()
	Focus()
	Close()
	SetDecoration(d Decoration)
	SetBackground(c Color)
	// SetSkipTaskbar hides the window from the taskbar and app switcher.
	SetSkipTaskbar(skip bool)
	// OnClose installs a hook run when the user closes the window.
	// Returning true blocks the close.
	OnClose(fn func() bool)
	// OnFocusChange installs a callback for focus gain (true) and loss (false).
	OnFocusChange(fn func(focused bool))
	Webview
}

// Webview is the script side of a native window.
type Webview interface {
	SetURL(url string)
	// ExecJS evaluates js without waiting for a result.
	ExecJS(js string) error
}

// Binder exposes named native functions to page scripts.
type Binder interface {
	Bind(name string, fn any) error
}

// Pointer reports cursor position and the usable monitor area around it.
type Pointer interface {
	CursorPosition() (Point, error)
	WorkArea(at Point) (Rect, error)
}

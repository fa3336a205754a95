package webview

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// Wrapper is the script side of one window: it binds native functions,
// loads the page and pushes events to it.
type Wrapper struct {
	native   platform.Webview
	binder   platform.Binder
	bindings map[string]any
	log      *slog.Logger

	mu  sync.Mutex
	url string
}

func New(native platform.Webview, binder platform.Binder, bindings map[string]any, logger *slog.Logger) *Wrapper {
	return &Wrapper{
		native:   native,
		binder:   binder,
		bindings: bindings,
		log:      logutil.Component(logger, "webview"),
	}
}

// Init binds the native functions and loads url. Returns false when url is empty.
func (w *Wrapper) Init(url string) bool {
	if w.binder != nil {
		names := make([]string, 0, len(w.bindings))
		for name := range w.bindings {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := w.binder.Bind(name, w.bindings[name]); err != nil {
				w.log.Error("failed to bind native function", "name", name, "error", err)
			}
		}
	}

	if url == "" {
		w.log.Error("no URL to load")
		return false
	}
	w.mu.Lock()
	w.url = url
	w.mu.Unlock()
	w.native.SetURL(url)
	w.log.Info("webview loading", "url", url)
	return true
}

// URL returns the last URL passed to Init.
func (w *Wrapper) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.url
}

// TriggerEvent calls window.__nativeCallback(name, data) in the page if it is defined.
// Fire and forget; evaluation failures are only logged.
func (w *Wrapper) TriggerEvent(name, data string) {
	if err := w.native.ExecJS(EventScript(name, data)); err != nil {
		w.log.Error("failed to deliver event", "event", name, "error", err)
	}
}

// EventScript builds the script that delivers one event to the page.
func EventScript(name, data string) string {
	return fmt.Sprintf(`(function() { if (window.__nativeCallback) { window.__nativeCallback("%s", "%s"); } return ''; })()`,
		EscapeJS(name), EscapeJS(data))
}

var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeJS escapes s for use inside a quoted script string literal.
func EscapeJS(s string) string { return jsEscaper.Replace(s) }

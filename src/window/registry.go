package window

import (
	"log/slog"
	"sync"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// Registry is the arena of live wrappers, indexed by native window id.
// It tracks which of them holds keyboard focus and routes Escape to it.
type Registry struct {
	mu       sync.Mutex
	windows  map[uint]*Wrapper
	focused  uint
	hasFocus bool
	log      *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{windows: map[uint]*Wrapper{}, log: logutil.Component(logger, "windows")}
}

func (r *Registry) add(w *Wrapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[w.id] = w
}

func (r *Registry) remove(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, id)
	if r.hasFocus && r.focused == id {
		r.hasFocus = false
	}
}

// Get returns the wrapper with the given id.
func (r *Registry) Get(id uint) (*Wrapper, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.windows[id]
	return w, ok
}

// Len returns the number of live wrappers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows)
}

// Foreground returns the wrapper that currently has focus, if any.
func (r *Registry) Foreground() (*Wrapper, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasFocus {
		return nil, false
	}
	w, ok := r.windows[r.focused]
	return w, ok
}

func (r *Registry) noteFocus(id uint, focused bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case focused:
		r.focused, r.hasFocus = id, true
	case r.hasFocus && r.focused == id:
		r.hasFocus = false
	}
}

// OnTrigger hides the foreground popup on Escape. Other events are not consumed.
func (r *Registry) OnTrigger(ev platform.Event) bool {
	if ev.Kind != platform.EventKeyDown || ev.Key != "esc" {
		return false
	}
	w, ok := r.Foreground()
	if !ok || w.kind != Popup || !w.IsVisible() {
		return false
	}
	r.log.Debug("escape pressed, hiding popup", "id", w.id)
	w.Hide()
	return true
}

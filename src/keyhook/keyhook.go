package keyhook

import (
	"log/slog"
	"runtime"
	"sync"

	hook "github.com/robotn/gohook"

	"byoa-assistant/src/hotkey"
	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// Hook is the process-wide low-level keyboard hook. It runs while at least
// one owner (a window id) has it installed and posts Escape presses to the sink.
type Hook struct {
	sink platform.Poster
	log  *slog.Logger

	start func() chan hook.Event
	end   func()

	mu     sync.Mutex
	owners map[uint]struct{}
	done   chan struct{}
}

func New(sink platform.Poster, logger *slog.Logger) *Hook {
	return &Hook{
		sink:   sink,
		log:    logutil.Component(logger, "keyhook"),
		start:  hook.Start,
		end:    hook.End,
		owners: map[uint]struct{}{},
	}
}

// Install adds owner; the OS hook starts with the first owner.
func (h *Hook) Install(owner uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.owners[owner]; ok {
		return
	}
	h.owners[owner] = struct{}{}
	if h.done != nil {
		return
	}

	evChan := h.start()
	if evChan == nil {
		h.log.Error("gohook.Start() returned nil channel")
		return
	}
	done := make(chan struct{})
	h.done = done
	go h.pump(evChan, done)
	h.log.Debug("key hook installed", "owner", owner)
}

// Uninstall removes owner; the OS hook stops with the last one.
func (h *Hook) Uninstall(owner uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.owners[owner]; !ok {
		return
	}
	delete(h.owners, owner)
	if len(h.owners) > 0 || h.done == nil {
		return
	}
	close(h.done)
	h.done = nil
	h.end()
	h.log.Debug("key hook removed", "owner", owner)
}

// Active reports whether the OS hook is running.
func (h *Hook) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done != nil
}

func (h *Hook) pump(evChan chan hook.Event, done chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("panic in key hook goroutine", "panic", r)
		}
	}()
	for {
		select {
		case <-done:
			return
		case ev, ok := <-evChan:
			if !ok {
				return
			}
			// gohook only observes: the key still reaches the foreground app.
			if pev, ok := translate(ev, escRawcodes); ok {
				h.sink.Post(pev)
			}
		}
	}
}

// Rawcodes are virtual key codes only on Windows; elsewhere the keycode decides.
var escRawcodes = func() []uint16 {
	if runtime.GOOS == "windows" {
		return hotkey.Rawcodes("esc")
	}
	return nil
}()

// translate maps a raw hook event to a typed key-down event. Only Escape is reported.
func translate(ev hook.Event, escRawcodes []uint16) (platform.Event, bool) {
	if ev.Kind != hook.KeyDown && ev.Kind != hook.KeyHold {
		return platform.Event{}, false
	}
	if ev.Keycode == hook.Keycode["esc"] {
		return platform.KeyDown("esc"), true
	}
	for _, rc := range escRawcodes {
		if ev.Rawcode == rc {
			return platform.KeyDown("esc"), true
		}
	}
	return platform.Event{}, false
}

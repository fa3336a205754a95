package hotkey

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// ShortcutID identifies the assistant's hotkey registration in hotkey events.
const ShortcutID = 1000

var (
	ErrNoSink   = errors.New("no message sink for hotkey events")
	ErrRegister = errors.New("hotkey registration denied")
)

// Backend binds chords with the OS. Presses are delivered as platform.Hotkey(id) events to sink.
type Backend interface {
	Register(chord Chord, id int, sink platform.Poster) error
	Unregister(id int) error
}

// Shortcut owns the single global chord and its callback slot.
//
// Last registration wins. Re-registration waits for an in-flight callback to
// return, so a trigger always completes with the handler it started with.
// Callbacks must not call RegisterHandler or UnregisterHandler themselves.
type Shortcut struct {
	backend Backend
	sink    platform.Poster
	chord   Chord
	log     *slog.Logger

	dispatchMu sync.Mutex
	mu         sync.Mutex
	cb         func()
	registered bool
}

// NewShortcut creates the shortcut for chord. sink may be nil, in which case registration fails.
func NewShortcut(backend Backend, sink platform.Poster, chord Chord, logger *slog.Logger) *Shortcut {
	return &Shortcut{
		backend: backend,
		sink:    sink,
		chord:   chord,
		log:     logutil.Component(logger, "hotkey"),
	}
}

// RegisterHandler stores cb, replacing any previous callback, and binds the chord
// with the OS if it is not bound yet.
func (s *Shortcut) RegisterHandler(cb func()) bool {
	if err := s.register(cb); err != nil {
		s.log.Error("failed to register hotkey", "chord", s.chord.String(), "error", err)
		return false
	}
	return true
}

func (s *Shortcut) register(cb func()) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sink == nil || s.backend == nil {
		return ErrNoSink
	}
	s.cb = cb
	if s.registered {
		return nil
	}
	if err := s.backend.Register(s.chord, ShortcutID, s.sink); err != nil {
		return fmt.Errorf("%w: %v", ErrRegister, err)
	}
	s.registered = true
	s.log.Info("hotkey registered", "chord", s.chord.String(), "id", ShortcutID)
	return nil
}

// UnregisterHandler releases the OS binding and clears the callback. Idempotent.
func (s *Shortcut) UnregisterHandler() bool {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cb = nil
	if !s.registered {
		return true
	}
	s.registered = false
	if err := s.backend.Unregister(ShortcutID); err != nil {
		s.log.Error("failed to unregister hotkey", "error", err)
		return false
	}
	s.log.Info("hotkey unregistered", "chord", s.chord.String())
	return true
}

// Registered reports whether the chord is currently bound.
func (s *Shortcut) Registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registered
}

// OnTrigger runs the callback once when ev is this shortcut's hotkey event.
func (s *Shortcut) OnTrigger(ev platform.Event) bool {
	if ev.Kind != platform.EventHotkey || ev.HotkeyID != ShortcutID {
		return false
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	cb, registered := s.cb, s.registered
	s.mu.Unlock()
	if !registered {
		return false
	}
	if cb != nil {
		cb()
	}
	return true
}

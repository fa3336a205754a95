package eventloop

import (
	"context"
	"log/slog"
	"sync"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// Dispatcher consumes platform events. OnTrigger reports whether the event was handled.
type Dispatcher interface {
	OnTrigger(ev platform.Event) bool
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ev platform.Event) bool

func (f DispatcherFunc) OnTrigger(ev platform.Event) bool { return f(ev) }

// Loop is the single-threaded message sink. Platform callbacks Post typed events;
// Run delivers them one at a time to the dispatchers in registration order.
type Loop struct {
	mu          sync.RWMutex
	dispatchers []Dispatcher
	events      chan platform.Event
	done        chan struct{}
	stopOnce    sync.Once
	log         *slog.Logger
}

// New creates a loop with the given queue depth (16 when <= 0).
func New(queue int, logger *slog.Logger) *Loop {
	if queue <= 0 {
		queue = 16
	}
	return &Loop{
		events: make(chan platform.Event, queue),
		done:   make(chan struct{}),
		log:    logutil.Component(logger, "eventloop"),
	}
}

// Use appends dispatchers. Earlier dispatchers see events first.
func (l *Loop) Use(ds ...Dispatcher) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dispatchers = append(l.dispatchers, ds...)
}

// Post enqueues ev without blocking. Returns false if the loop is stopped or the queue is full.
func (l *Loop) Post(ev platform.Event) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- ev:
		return true
	default:
		l.log.Warn("event dropped, queue full", "event", ev.String())
		return false
	}
}

// Dispatch hands ev to each dispatcher until one consumes it.
func (l *Loop) Dispatch(ev platform.Event) bool {
	l.mu.RLock()
	ds := append([]Dispatcher(nil), l.dispatchers...)
	l.mu.RUnlock()

	for _, d := range ds {
		if d.OnTrigger(ev) {
			return true
		}
	}
	l.log.Debug("event not consumed", "event", ev.String())
	return false
}

// Run processes events until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("event loop started")
	defer l.log.Info("event loop stopped")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case ev := <-l.events:
			l.dispatchSafe(ev)
		}
	}
}

func (l *Loop) dispatchSafe(ev platform.Event) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("panic in event dispatch", "event", ev.String(), "panic", r)
		}
	}()
	l.Dispatch(ev)
}

// Stop ends Run and rejects further posts. Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

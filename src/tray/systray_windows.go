package tray

import (
	"log/slog"
	"sync"

	"github.com/getlantern/systray"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// NewSystray returns the notification-area backend (getlantern/systray).
// The left-click menu is opened natively, so OpenMenu has nothing to do.
func NewSystray(logger *slog.Logger) Backend {
	return &systrayBackend{log: logutil.Component(logger, "systray")}
}

type systrayBackend struct {
	log *slog.Logger

	mu   sync.Mutex
	quit chan struct{}
}

func (b *systrayBackend) Show(icon []byte, tooltip string, items []MenuItem, sink platform.Poster) error {
	if IsPNG(icon) {
		ico, err := ToICO(icon)
		if err != nil {
			return err
		}
		icon = ico
	}

	b.mu.Lock()
	quit := make(chan struct{})
	b.quit = quit
	b.mu.Unlock()

	// The tray window and its GetMessage loop must share one thread.
	go runLocked(func() { systray.Run(b.onReady(icon, tooltip, items, sink, quit), b.onExit) })
	return nil
}

func (b *systrayBackend) onReady(icon []byte, tooltip string, items []MenuItem, sink platform.Poster, quit chan struct{}) func() {
	return func() {
		systray.SetIcon(icon)
		systray.SetTooltip(tooltip)
		for _, it := range items {
			if it.Separator {
				systray.AddSeparator()
				continue
			}
			mi := systray.AddMenuItem(it.Label, it.Label)
			go b.forward(mi, it.Command, sink, quit)
		}
		b.log.Debug("systray ready")
	}
}

func (b *systrayBackend) onExit() { b.log.Debug("systray exited") }

func (b *systrayBackend) forward(mi *systray.MenuItem, cmd platform.MenuCommand, sink platform.Poster, quit chan struct{}) {
	for {
		select {
		case <-quit:
			return
		case <-mi.ClickedCh:
			sink.Post(platform.Menu(cmd))
		}
	}
}

func (b *systrayBackend) OpenMenu() {}

func (b *systrayBackend) Remove() {
	b.mu.Lock()
	if b.quit != nil {
		close(b.quit)
		b.quit = nil
	}
	b.mu.Unlock()
	systray.Quit()
}
